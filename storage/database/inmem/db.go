package inmemdb

import (
	"sync"

	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
)

type (
	DB struct {
		user   *userTable
		course *courseTable
	}

	userTable struct {
		table map[string]*user.User // keyed by email
		mutex sync.RWMutex
	}

	// courseTable keeps courses in creation order.
	courseTable struct {
		table []*course.Course
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:   &userTable{table: make(map[string]*user.User)},
		course: &courseTable{},
	}
	return db, nil
}
