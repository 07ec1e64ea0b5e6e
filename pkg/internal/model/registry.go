package model

// 实体类型标识，附件、收藏和操作日志都用它做关联键.
const (
	EntityChemical     = "chemical"
	EntityManufacturer = "manufacturer"
	EntityLocation     = "location"
	EntityPrimer       = "primer"
	EntityPlasmid      = "plasmid"
	EntityStrain       = "strain"
	EntityStock        = "stock"
	EntityLibStock     = "libstock"
	EntityGenome       = "genome"
	EntityProtocol     = "protocol"
	EntityTag          = "tag"
	EntityLibrary      = "library"
)

// Entity 所有可被目录服务管理的模型都实现它.
type Entity interface {
	GetID() uint
}

// entityFactories 按类型名构造空模型实例.
var entityFactories = map[string]func() Entity{
	EntityChemical:     func() Entity { return &Chemical{} },
	EntityManufacturer: func() Entity { return &Manufacturer{} },
	EntityLocation:     func() Entity { return &StorageLocation{} },
	EntityPrimer:       func() Entity { return &Primer{} },
	EntityPlasmid:      func() Entity { return &Plasmid{} },
	EntityStrain:       func() Entity { return &Strain{} },
	EntityStock:        func() Entity { return &Stock{} },
	EntityLibStock:     func() Entity { return &LibStock{} },
	EntityGenome:       func() Entity { return &Genome{} },
	EntityProtocol:     func() Entity { return &Protocol{} },
	EntityTag:          func() Entity { return &Tag{} },
}

// ValidEntityType 判断类型名是否在已知集合内.
func ValidEntityType(name string) bool {
	_, ok := entityFactories[name]
	return ok
}

// NewEntity 构造指定类型的空实例，未知类型返回 nil.
func NewEntity(name string) Entity {
	f, ok := entityFactories[name]
	if !ok {
		return nil
	}
	return f()
}
