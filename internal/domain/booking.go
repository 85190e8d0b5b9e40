package domain

import "time"

// Booking is a single event registration. ID is the document identifier.
type Booking struct {
	ID         string     `json:"bookingId" gorm:"column:id;primaryKey" firestore:"-"`
	UserID     string     `json:"userId" gorm:"column:user_id;index" firestore:"userId"`
	EventTitle string     `json:"eventTitle" gorm:"column:event_title" firestore:"eventTitle"`
	EventFrom  string     `json:"eventFrom" gorm:"column:event_from" firestore:"eventFrom"`
	EventTo    string     `json:"eventTo" gorm:"column:event_to" firestore:"eventTo"`
	EventWhere string     `json:"eventWhere" gorm:"column:event_where" firestore:"eventWhere"`
	Name       string     `json:"name" gorm:"column:name" firestore:"name"`
	Email      string     `json:"email" gorm:"column:email" firestore:"email"`
	Level      string     `json:"level" gorm:"column:level" firestore:"level"`
	CreatedAt  *time.Time `json:"createdAt,omitempty" gorm:"column:created_at;index" firestore:"createdAt"`
}

func (Booking) TableName() string { return "bookings" }
