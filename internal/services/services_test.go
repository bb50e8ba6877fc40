package services

import (
	"context"
	"errors"
	"testing"

	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
	"restUriHub/internal/repo"
	"restUriHub/internal/testutil"
	"restUriHub/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	NewServices()
}

// inTx 在事务中执行 fn，返回 fn 的错误
func inTx(t *testing.T, entry repo.InterEntryRepo, fn func(tx repo.InterEntryRepo) error) error {
	t.Helper()
	return entry.Transaction(context.Background(), fn)
}

func pathCreate(apiId string, order int, value string) types.PathCreate {
	return types.PathCreate{ApiId: apiId, PathOrder: order, PathValue: value}
}

func TestCreatePathDefaultsToUsable(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)

	var created *models.RestUriPath
	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		var err error
		created, err = UriPathService.CreatePath(context.Background(), tx, pathCreate("PATH001", 1, "users"))
		return err
	})
	require.NoError(t, err)
	assert.Len(t, created.GetObjId(), 32)
	assert.Equal(t, "USABLE", created.GetUseStatCd())
	assert.False(t, created.IsParamUse)
}

func TestCreatePathKeepsExplicitStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)

	req := pathCreate("PATH001", 0, "users")
	req.UseStatCd = models.UseStatusUnusable.Ptr()
	req.IsParamUse = true
	name := "userId"
	req.ParamNm = &name

	var created *models.RestUriPath
	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		var err error
		created, err = UriPathService.CreatePath(context.Background(), tx, req)
		return err
	}))
	assert.Equal(t, "UNUSABLE", created.GetUseStatCd())
	assert.True(t, created.IsParamUse)
	require.NotNil(t, created.ParamNm)
	assert.Equal(t, "userId", *created.ParamNm)
}

func TestCreatePathDuplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)

	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.CreatePath(context.Background(), tx, pathCreate("PATH001", 1, "users"))
		return err
	}))

	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.CreatePath(context.Background(), tx, pathCreate("PATH001", 1, "other"))
		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrDuplicate))
	assert.Equal(t, "Path with api_id 'PATH001' and path_order '1' already exists", errcode.MessageOf(err))

	n, err := entry.UriPath().CountByApiId("PATH001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCreatePathMissingParent(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := repo.NewRepoEntry(db)

	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.CreatePath(context.Background(), tx, pathCreate("NOPE", 0, "users"))
		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrConstraint))
}

// racingEntry 模拟并发：预检查看不到已提交的同键记录
type racingEntry struct {
	repo.InterEntryRepo
}

func (r racingEntry) UriPath() repo.InterUriPathRepo {
	return racingPathRepo{r.InterEntryRepo.UriPath()}
}

type racingPathRepo struct {
	repo.InterUriPathRepo
}

func (racingPathRepo) FindByApiIdAndPathOrder(string, int) (*models.RestUriPath, error) {
	return nil, nil
}

func TestCreatePathRaceFallsBackToConstraint(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)

	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.CreatePath(context.Background(), tx, pathCreate("PATH001", 3, "a"))
		return err
	}))

	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.CreatePath(context.Background(), racingEntry{tx}, pathCreate("PATH001", 3, "b"))
		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrConstraint))
	assert.Contains(t, errcode.MessageOf(err), "Database constraint violation")

	paths, err := entry.UriPath().FindByApiId("PATH001")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "a", paths[0].PathValue)
}

func TestGetPathById(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)
	ctx := context.Background()

	var created *models.RestUriPath
	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		var err error
		created, err = UriPathService.CreatePath(ctx, tx, pathCreate("PATH001", 0, "users"))
		return err
	}))

	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		found, err := UriPathService.GetPathById(ctx, tx, created.GetObjId())
		require.NoError(t, err)
		assert.Equal(t, created.GetObjId(), found.GetObjId())
		assert.Equal(t, "users", found.PathValue)
		return nil
	}))

	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.GetPathById(ctx, tx, "nonexistent")
		return err
	})
	assert.True(t, errors.Is(err, errcode.ErrNotFound))
	assert.Equal(t, "Path with id nonexistent not found", errcode.MessageOf(err))
}

func TestGetPathsByApiId(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "PATH001")
	entry := repo.NewRepoEntry(db)
	ctx := context.Background()

	for _, order := range []int{2, 0, 1} {
		order := order
		require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
			_, err := UriPathService.CreatePath(ctx, tx, pathCreate("PATH001", order, "v"))
			return err
		}))
	}

	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		paths, err := UriPathService.GetPathsByApiId(ctx, tx, "PATH001")
		require.NoError(t, err)
		require.Len(t, paths, 3)
		for i, p := range paths {
			assert.Equal(t, i, p.PathOrder)
		}

		none, err := UriPathService.GetPathsByApiId(ctx, tx, "EMPTY")
		require.NoError(t, err)
		assert.Empty(t, none)
		return nil
	}))
}

func TestDefLifecycle(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := repo.NewRepoEntry(db)
	ctx := context.Background()

	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		def, err := UriDefService.CreateDef(ctx, tx, models.NewRestUriDef("API001", "SITE01", "svc"))
		require.NoError(t, err)
		assert.Equal(t, "USABLE", def.GetUseStatCd())

		_, err = UriPathService.CreatePath(ctx, tx, pathCreate("API001", 0, "a"))
		require.NoError(t, err)
		_, err = UriPathService.CreatePath(ctx, tx, pathCreate("API001", 1, "b"))
		return err
	}))

	err := inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriDefService.CreateDef(ctx, tx, models.NewRestUriDef("API001", "SITE02", "svc"))
		return err
	})
	assert.True(t, errors.Is(err, errcode.ErrDuplicate))

	var removed int64
	require.NoError(t, inTx(t, entry, func(tx repo.InterEntryRepo) error {
		var err error
		removed, err = UriDefService.DeleteDef(ctx, tx, "API001")
		return err
	}))
	assert.Equal(t, int64(2), removed)

	n, err := entry.UriPath().CountByApiId("API001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	err = inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriDefService.GetDefByApiId(ctx, tx, "API001")
		return err
	})
	assert.True(t, errors.Is(err, errcode.ErrNotFound))

	err = inTx(t, entry, func(tx repo.InterEntryRepo) error {
		_, err := UriDefService.DeleteDef(ctx, tx, "API001")
		return err
	})
	assert.True(t, errors.Is(err, errcode.ErrNotFound))
}

func TestServiceErrorsPropagateFromClosedDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := repo.NewRepoEntry(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = entry.Transaction(context.Background(), func(tx repo.InterEntryRepo) error {
		_, err := UriPathService.GetPathsByApiId(context.Background(), tx, "PATH001")
		return err
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrUnavailable), err.Error())
	assert.False(t, errors.Is(err, gorm.ErrRecordNotFound))
}
