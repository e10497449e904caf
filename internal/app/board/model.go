package board

import "time"

// Board is a named canvas document. Content is the opaque serialized
// snapshot the clients exchange; the server never parses it. Title is
// intentionally not unique at the database level — uniqueness is advisory
// and checked by find-then-create in the service.
type Board struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BoardListResponse struct {
	Boards []*Board `json:"boards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
