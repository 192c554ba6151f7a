package models

type Cafe struct {
	ID uint `gorm:"primaryKey"`

	Name     string `gorm:"size:250;uniqueIndex;not null"`
	MapURL   string `gorm:"column:map_url;size:500;not null"`
	ImgURL   string `gorm:"column:img_url;size:500;not null"`
	Location string `gorm:"size:250;not null"`
	Seats    string `gorm:"size:250;not null"`

	HasToilet    bool `gorm:"not null"`
	HasWifi      bool `gorm:"not null"`
	HasSockets   bool `gorm:"not null"`
	CanTakeCalls bool `gorm:"not null"`

	// nil when no price was ever given
	CoffeePrice *string `gorm:"size:250"`
}

func (Cafe) TableName() string {
	return "cafes"
}
