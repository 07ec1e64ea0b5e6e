package model

import "gorm.io/gorm"

// AutoMigrate 按依赖顺序建表.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Manufacturer{},
		&StorageLocation{},
		&Chemical{},
		&Primer{},
		&Plasmid{},
		&Strain{},
		&Stock{},
		&Library{},
		&LibStock{},
		&Tag{},
		&Protocol{},
		&Genome{},
		&File{},
		&Bookmark{},
		&ActionLog{},
	)
}
