package domain

// Rating lives in events/{EventID}/ratings/{UserID}; the document id is the
// rating user's uid.
type Rating struct {
	EventID string  `json:"eventId" gorm:"column:event_id;primaryKey" firestore:"-"`
	UserID  string  `json:"userId" gorm:"column:user_id;primaryKey" firestore:"-"`
	Value   float64 `json:"value" gorm:"column:value" firestore:"value"`
}

func (Rating) TableName() string { return "ratings" }
