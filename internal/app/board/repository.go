package board

import "gorm.io/gorm"

type Repository interface {
	GetAllBoards() ([]*Board, error)
	GetBoardByID(id uint64) (*Board, error)
	GetBoardByTitle(title string) (*Board, error)
	CreateBoard(board *Board) error
	SaveBoard(board *Board) error
	DeleteBoardByID(id uint64) (int64, error)
	DeleteBoardByTitle(title string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllBoards() ([]*Board, error) {
	var boards []*Board
	err := r.db.
		Order("created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) GetBoardByID(id uint64) (*Board, error) {
	var board Board
	err := r.db.Where("id = ?", id).First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) GetBoardByTitle(title string) (*Board, error) {
	var board Board
	err := r.db.Where("title = ?", title).Order("created_at ASC").First(&board).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) CreateBoard(board *Board) error {
	return r.db.Create(board).Error
}

// SaveBoard writes the full row back. There is no version column and no
// WHERE beyond the primary key, so concurrent writers overwrite each other
// (last write wins).
func (r *repository) SaveBoard(board *Board) error {
	return r.db.Save(board).Error
}

func (r *repository) DeleteBoardByID(id uint64) (int64, error) {
	result := r.db.Where("id = ?", id).Delete(&Board{})
	return result.RowsAffected, result.Error
}

func (r *repository) DeleteBoardByTitle(title string) (int64, error) {
	result := r.db.Where("title = ?", title).Delete(&Board{})
	return result.RowsAffected, result.Error
}
