package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateMatch 같은 날짜에 같은 쌍의 매칭이 이미 존재
	ErrDuplicateMatch = errors.New("match already exists for pair and date")
	ErrSelfMatch      = errors.New("match users must differ")
	ErrMatchNotFound  = errors.New("match not found")
	ErrNotParticipant = errors.New("user is not a participant of the match")
)

// isDuplicate unique 제약 위반 여부
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
