package models

import (
	"time"

	"github.com/uptrace/bun"
)

// TeeTime is one bookable slot group at a course. Prices are stored in
// minor units (cents).
type TeeTime struct {
	bun.BaseModel `bun:"table:tee_times,alias:tt"`

	ID                       string    `bun:"id,pk" json:"id"`
	CourseID                 string    `bun:"course_id,notnull" json:"courseId"`
	Date                     string    `bun:"date,notnull,type:date" json:"date"`
	ProviderDate             time.Time `bun:"provider_date,notnull" json:"providerDate"`
	Time                     int       `bun:"time,notnull" json:"time"`
	NumberOfHoles            int       `bun:"number_of_holes,notnull" json:"numberOfHoles"`
	AvailableFirstHandSpots  int       `bun:"available_first_hand_spots,notnull,default:0" json:"availableFirstHandSpots"`
	AvailableSecondHandSpots int       `bun:"available_second_hand_spots,notnull,default:0" json:"availableSecondHandSpots"`
	GreenFee                 int       `bun:"green_fee,notnull" json:"greenFee"`
	CartFee                  int       `bun:"cart_fee,notnull,default:0" json:"cartFee"`
	GreenFeeTax              int       `bun:"green_fee_tax,notnull,default:0" json:"greenFeeTax"`
	CartFeeTax               int       `bun:"cart_fee_tax,notnull,default:0" json:"cartFeeTax"`

	Course *Course `bun:"rel:belongs-to,join:course_id=id" json:"-"`
}
