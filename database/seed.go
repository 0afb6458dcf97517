package database

import (
	"log"
	"restro_manager/constants"
	"restro_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	hashedPassword := string(bytes)
	if err != nil {
		hashedPassword = "admin123"
	}
	accounts := []model.Account{
		{Username: "admin", Password: hashedPassword, Role: constants.ROLE_ADMIN, IsActive: true},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	charges := []model.Charge{
		{Name: "CGST", ChargeType: constants.CHARGE_PERCENT, Value: 2.5, IsActive: true},
		{Name: "SGST", ChargeType: constants.CHARGE_PERCENT, Value: 2.5, IsActive: true},
		{Name: "Service Charge", ChargeType: constants.CHARGE_PERCENT, Value: 5, IsActive: false},
	}
	for _, charge := range charges {
		if err := db.Where(model.Charge{Name: charge.Name}).FirstOrCreate(&charge).Error; err != nil {
			log.Println("failed to seed charge:", charge.Name, "error:", err)
		}
	}

	tables := []model.DiningTable{
		{Area: "AC Hall", TableNo: "1", MaxPerson: 4},
		{Area: "AC Hall", TableNo: "2", MaxPerson: 4},
		{Area: "AC Hall", TableNo: "3", MaxPerson: 6},
		{Area: "Garden", TableNo: "1", MaxPerson: 4},
		{Area: "Garden", TableNo: "2", MaxPerson: 8},
	}
	for _, table := range tables {
		if err := db.Where(model.DiningTable{Area: table.Area, TableNo: table.TableNo}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Area, table.TableNo, "error:", err)
		}
	}

	categories := []model.MenuCategory{
		{Name: "Starters"},
		{Name: "Main Course"},
		{Name: "Beverages"},
	}
	for _, category := range categories {
		category.Slug = slug.Make(category.Name)
		if err := db.Where(model.MenuCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}

	rooms := []model.Room{
		{RoomNo: "101", RoomType: "Standard", Price: 1800, MaxOccupancy: 2, Status: constants.ROOM_AVAILABLE},
		{RoomNo: "102", RoomType: "Standard", Price: 1800, MaxOccupancy: 2, Status: constants.ROOM_AVAILABLE},
		{RoomNo: "201", RoomType: "Deluxe", Price: 2800, MaxOccupancy: 3, Status: constants.ROOM_AVAILABLE},
	}
	for _, room := range rooms {
		if err := db.Where(model.Room{RoomNo: room.RoomNo}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", room.RoomNo, "error:", err)
		}
	}
}
