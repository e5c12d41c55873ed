package sqlitedb

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/user"
)

type userRow struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	Role         string `db:"role"`
	PasswordHash []byte `db:"password_hash"`
	CreatedAt    string `db:"created_at"`
	UpdatedAt    string `db:"updated_at"`
	LastLogin    string `db:"last_login"`
}

func newUserRow(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Username:     usr.Username,
		Email:        usr.Email,
		Role:         usr.Role,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    formatTime(usr.CreatedAt),
		UpdatedAt:    formatTime(usr.UpdatedAt),
		LastLogin:    formatTime(usr.LastLogin),
	}
}

func (row userRow) user() user.User {
	return user.User{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		Role:         row.Role,
		PasswordHash: row.PasswordHash,
		CreatedAt:    parseTime(row.CreatedAt),
		UpdatedAt:    parseTime(row.UpdatedAt),
		LastLogin:    parseTime(row.LastLogin),
	}
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

// trapNoRowsErr maps sql "no rows" err to user.ErrNotFound
func (repo *userRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return user.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo *userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	var exists bool
	err := repo.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM "user" WHERE email = ?)`, email)
	if err != nil {
		return errors.Wrap(err, "checking user uniqueness")
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO "user" (id, username, email, role, password_hash, created_at, updated_at, last_login)
		VALUES (:id, :username, :email, :role, :password_hash, :created_at, :updated_at, :last_login)`,
		newUserRow(usr))
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var rows []userRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM "user" ORDER BY rowid`); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.user())
	}
	return users, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var row userRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM "user" WHERE email = ?`, email); err != nil {
		return user.User{}, repo.trapNoRowsErr(err, "finding user by email")
	}
	return row.user(), nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE "user"
		SET username = :username, email = :email, role = :role, password_hash = :password_hash,
		    created_at = :created_at, updated_at = :updated_at, last_login = :last_login
		WHERE id = :id`,
		newUserRow(usr))
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
