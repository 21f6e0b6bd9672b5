package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	mock_database "github.com/tigercart/tigercart/internal/db/mocks"
	"github.com/tigercart/tigercart/internal/repository"
	"github.com/tigercart/tigercart/internal/repository/postgresql"
)

// stubRow satisfies pgx.Row for ValidateUser's password lookup.
type stubRow struct {
	value string
	err   error
}

func (r stubRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

func TestUserRepo_GetByUsername(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		want := &repository.User{Username: "connor", DisplayName: "Connor"}
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("connor")).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*repository.User) = *want
				return nil
			})

		user, err := repo.GetByUsername(ctx, "connor")
		require.NoError(t, err)
		assert.Equal(t, want, user)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewUserRepo(mockDB)

		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		_, err := repo.GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestUserRepo_CreateUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := mock_database.NewMockDB(ctrl)
	repo := postgresql.NewUserRepo(mockDB)

	mockDB.EXPECT().
		Exec(gomock.Any(), gomock.Any(), gomock.Eq("connor"), gomock.Any(), gomock.Eq("Connor")).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			stored := args[1].(string)
			assert.NotEqual(t, "secret", stored)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret")))
			return pgconn.CommandTag("INSERT 0 1"), nil
		})

	err := repo.CreateUser(context.Background(), "connor", "secret", "Connor")
	assert.NoError(t, err)
}

func TestUserRepo_ValidateUser(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		row      stubRow
		password string
		want     bool
	}{
		{name: "valid credentials", row: stubRow{value: string(hash)}, password: "secret", want: true},
		{name: "wrong password", row: stubRow{value: string(hash)}, password: "nope", want: false},
		{name: "unknown user", row: stubRow{err: errors.New("no rows in result set")}, password: "secret", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := mock_database.NewMockDB(ctrl)
			repo := postgresql.NewUserRepo(mockDB)

			mockDB.EXPECT().
				ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("connor")).
				Return(tt.row)

			valid, err := repo.ValidateUser(ctx, "connor", tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}
