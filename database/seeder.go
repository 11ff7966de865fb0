package database

import (
	"inventory-app/controllers/idgen"
	"inventory-app/models"
	"inventory-app/types"

	"gorm.io/gorm"
)

// RunSeeders loads demo master data so a fresh in-memory database is usable
// straight away. Each seeder is a no-op when the record already exists.
func RunSeeders(db *gorm.DB) {
	SeedWarehouses(db)
	SeedStaff(db)
}

func SeedWarehouses(db *gorm.DB) {
	warehouses := []models.Warehouse{
		{Name: "Central Warehouse", Location: "Springfield, IL", Status: models.WarehouseActive},
		{Name: "North Depot", Location: "Rockford, IL", Status: models.WarehouseActive},
	}

	for _, w := range warehouses {
		var existing models.Warehouse
		if err := db.Where("name = ?", w.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				w.ID = types.SnowflakeID(idgen.GenerateID())
				db.Create(&w)
			}
		}
	}
}

func SeedStaff(db *gorm.DB) {
	var central models.Warehouse
	db.Where("name = ?", "Central Warehouse").First(&central)

	staff := []models.StaffMember{
		{
			Name:         "Mike Torres",
			Email:        "mike@warehouse.com",
			Contact:      "555-0101",
			Password:     "password1",
			Role:         models.RoleWarehouseManager,
			WarehouseIDs: types.IDList{central.ID},
		},
		{
			Name:         "Dana Reed",
			Email:        "dana@warehouse.com",
			Contact:      "555-0102",
			Password:     "password2",
			Role:         models.RoleInstaller,
			WarehouseIDs: types.IDList{central.ID},
		},
	}

	for _, s := range staff {
		var existing models.StaffMember
		if err := db.Where("email = ?", s.Email).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				s.ID = types.SnowflakeID(idgen.GenerateID())
				db.Create(&s)
			}
		}
	}
}
