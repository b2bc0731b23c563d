package model

import (
	"gorm.io/gorm"
)

type MachineFamily struct {
	gorm.Model

	Name        string `gorm:"index"`
	Description string
}
