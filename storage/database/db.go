package database

import (
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/course"
	"github.com/trezcool/darasa/core/user"
	"github.com/trezcool/darasa/storage/database/inmem"
	"github.com/trezcool/darasa/storage/database/sqlite"
)

// Repositories bundles the repositories backing a single database engine.
type Repositories struct {
	User   user.Repository
	Course course.Repository

	closeFunc func() error
}

// Open connects the repositories for the engine set in conf.Database.Engine:
// "memory" (the default) or "sqlite".
func Open(conf *core.Config) (*Repositories, error) {
	switch conf.Database.Engine {
	case "", "memory":
		db, err := inmemdb.Open()
		if err != nil {
			return nil, errors.Wrap(err, "opening in-memory database")
		}
		return &Repositories{
			User:   inmemdb.NewUserRepository(db),
			Course: inmemdb.NewCourseRepository(db),
		}, nil

	case "sqlite":
		db, err := sqlitedb.Open()
		if err != nil {
			return nil, errors.Wrap(err, "opening sqlite database")
		}
		return &Repositories{
			User:      sqlitedb.NewUserRepository(db),
			Course:    sqlitedb.NewCourseRepository(db),
			closeFunc: db.Close,
		}, nil

	default:
		return nil, errors.Errorf("unknown database engine %q", conf.Database.Engine)
	}
}

func (r *Repositories) Close() error {
	if r.closeFunc != nil {
		return r.closeFunc()
	}
	return nil
}
