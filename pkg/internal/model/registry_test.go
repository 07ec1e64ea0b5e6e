package model_test

import (
	"testing"

	"github.com/yeisme/labvault/pkg/internal/model"
)

func TestValidEntityType(t *testing.T) {
	for _, name := range []string{
		model.EntityChemical, model.EntityManufacturer, model.EntityLocation,
		model.EntityPrimer, model.EntityPlasmid, model.EntityStrain,
		model.EntityStock, model.EntityLibStock, model.EntityGenome,
		model.EntityProtocol, model.EntityTag,
	} {
		if !model.ValidEntityType(name) {
			t.Errorf("ValidEntityType(%q) = false", name)
		}
	}

	// library 只做批量导入的容器，不走附件和收藏
	for _, name := range []string{model.EntityLibrary, "spaceship", ""} {
		if model.ValidEntityType(name) {
			t.Errorf("ValidEntityType(%q) = true", name)
		}
	}
}

func TestNewEntity(t *testing.T) {
	if e := model.NewEntity(model.EntityChemical); e == nil {
		t.Error("NewEntity(chemical) = nil")
	}

	if e := model.NewEntity("spaceship"); e != nil {
		t.Errorf("NewEntity(spaceship) = %T, want nil", e)
	}
}

func TestAttachmentObjectKey(t *testing.T) {
	got := model.AttachmentObjectKey(model.EntityPlasmid, 17, "map.gb")
	if got != "plasmid/17/map.gb" {
		t.Errorf("key = %q, want plasmid/17/map.gb", got)
	}
}

func TestChemicalCode(t *testing.T) {
	chem := &model.Chemical{Label: "C", Number: 12}
	if got := chem.Code(); got != "C12" {
		t.Errorf("code = %q, want C12", got)
	}
}

func TestLibStockLocation(t *testing.T) {
	stock := &model.LibStock{Plate: 3, Letter: "F", Number: 7}
	if got := stock.Location(); got != "Plate 3, well F7" {
		t.Errorf("location = %q, want %q", got, "Plate 3, well F7")
	}
}
