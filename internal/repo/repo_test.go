package repo

import (
	"context"
	"errors"
	"testing"

	"restUriHub/internal/errcode"
	"restUriHub/internal/models"
	"restUriHub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPath(apiId string, order int, value string, status models.UseStatus) *models.RestUriPath {
	p := models.NewRestUriPath(apiId, order, value)
	p.UseStatCd = status.Ptr()
	return p
}

func TestSaveInsertThenUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	paths := NewRepoEntry(db).UriPath()

	p := newPath("API001", 0, "users", models.UseStatusUsable)
	id := p.GetObjId()
	require.Len(t, id, 32)

	saved, err := paths.Save(p)
	require.NoError(t, err)
	assert.Equal(t, id, saved.GetObjId())
	assert.False(t, saved.CrtDt.IsZero())
	assert.False(t, saved.IsParamUse)
	crtDt := saved.CrtDt

	saved.PathValue = "members"
	updated, err := paths.Save(saved)
	require.NoError(t, err)
	assert.Equal(t, "members", updated.PathValue)
	assert.True(t, crtDt.Equal(updated.CrtDt))

	count, err := paths.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSaveGeneratesMissingId(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")

	p := &models.RestUriPath{ApiId: "API001", PathOrder: 0, PathValue: "users"}
	saved, err := NewRepoEntry(db).UriPath().Save(p)
	require.NoError(t, err)
	assert.Len(t, saved.GetObjId(), 32)
}

func TestFindById(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	paths := NewRepoEntry(db).UriPath()

	saved, err := paths.Save(newPath("API001", 0, "users", models.UseStatusUsable))
	require.NoError(t, err)

	found, err := paths.FindById(saved.GetObjId())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "users", found.PathValue)
	assert.Equal(t, "USABLE", found.GetUseStatCd())

	missing, err := paths.FindById("nonexistent")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := paths.ExistsById(saved.GetObjId())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFindByApiIdOrdersByPathOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	testutil.SeedDef(t, db, "API002")
	paths := NewRepoEntry(db).UriPath()

	_, err := paths.SaveAll([]*models.RestUriPath{
		newPath("API001", 2, "c", models.UseStatusUsable),
		newPath("API001", 0, "a", models.UseStatusUsable),
		newPath("API001", 1, "b", models.UseStatusUnusable),
		newPath("API002", 0, "x", models.UseStatusUsable),
	})
	require.NoError(t, err)

	list, err := paths.FindByApiId("API001")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{0, 1, 2}, []int{list[0].PathOrder, list[1].PathOrder, list[2].PathOrder})
	assert.Equal(t, []string{"a", "b", "c"}, []string{list[0].PathValue, list[1].PathValue, list[2].PathValue})

	empty, err := paths.FindByApiId("NONE")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	n, err := paths.CountByApiId("API001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	all, err := paths.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFindByApiIdAndPathOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	paths := NewRepoEntry(db).UriPath()

	_, err := paths.Save(newPath("API001", 1, "users", models.UseStatusUsable))
	require.NoError(t, err)

	found, err := paths.FindByApiIdAndPathOrder("API001", 1)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "users", found.PathValue)

	missing, err := paths.FindByApiIdAndPathOrder("API001", 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindByUseStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	testutil.SeedDef(t, db, "API002")
	paths := NewRepoEntry(db).UriPath()

	_, err := paths.SaveAll([]*models.RestUriPath{
		newPath("API002", 1, "d", models.UseStatusUsable),
		newPath("API001", 1, "b", models.UseStatusUsable),
		newPath("API002", 0, "c", models.UseStatusUsable),
		newPath("API001", 0, "a", models.UseStatusUsable),
		newPath("API001", 2, "z", models.UseStatusUnusable),
	})
	require.NoError(t, err)

	usable, err := paths.FindUsablePaths()
	require.NoError(t, err)
	got := make([]string, 0, len(usable))
	for _, p := range usable {
		got = append(got, p.PathValue)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	unusable, err := paths.FindUnusablePaths()
	require.NoError(t, err)
	require.Len(t, unusable, 1)
	assert.Equal(t, "z", unusable[0].PathValue)

	scoped, err := paths.FindByApiIdAndUseStatus("API001", models.UseStatusUsable)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	assert.Equal(t, 0, scoped[0].PathOrder)
	assert.Equal(t, 1, scoped[1].PathOrder)
}

func TestConstraintViolations(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	paths := NewRepoEntry(db).UriPath()

	_, err := paths.Save(newPath("API001", 0, "users", models.UseStatusUsable))
	require.NoError(t, err)

	tests := []struct {
		name string
		path *models.RestUriPath
	}{
		{"duplicate api_id and path_order", newPath("API001", 0, "other", models.UseStatusUsable)},
		{"missing parent definition", newPath("MISSING", 0, "x", models.UseStatusUsable)},
		{"negative path_order", newPath("API001", -1, "x", models.UseStatusUsable)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paths.Save(tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errcode.ErrConstraint), err.Error())
			assert.Contains(t, errcode.MessageOf(err), "Database constraint violation")
		})
	}

	defs := NewRepoEntry(db).UriDef()
	_, err = defs.Save(models.NewRestUriDef("API001", "S2", "svc2"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrConstraint))
}

func TestDeleteDefCascadesToPaths(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	testutil.SeedDef(t, db, "API002")
	entry := NewRepoEntry(db)

	_, err := entry.UriPath().SaveAll([]*models.RestUriPath{
		newPath("API001", 0, "a", models.UseStatusUsable),
		newPath("API001", 1, "b", models.UseStatusUsable),
		newPath("API002", 0, "c", models.UseStatusUsable),
	})
	require.NoError(t, err)

	deleted, err := entry.UriDef().DeleteByApiId("API001")
	require.NoError(t, err)
	assert.True(t, deleted)

	n, err := entry.UriPath().CountByApiId("API001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = entry.UriPath().CountByApiId("API002")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	def, err := entry.UriDef().FindByApiId("API001")
	require.NoError(t, err)
	assert.Nil(t, def)

	deleted, err = entry.UriDef().DeleteByApiId("API001")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteAndDeleteById(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedDef(t, db, "API001")
	paths := NewRepoEntry(db).UriPath()

	a, err := paths.Save(newPath("API001", 0, "a", models.UseStatusUsable))
	require.NoError(t, err)
	b, err := paths.Save(newPath("API001", 1, "b", models.UseStatusUsable))
	require.NoError(t, err)

	require.NoError(t, paths.Delete(a))
	exists, err := paths.ExistsById(a.GetObjId())
	require.NoError(t, err)
	assert.False(t, exists)

	ok, err := paths.DeleteById(b.GetObjId())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = paths.DeleteById(b.GetObjId())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := NewRepoEntry(db)
	boom := errors.New("boom")

	err := entry.Transaction(context.Background(), func(tx InterEntryRepo) error {
		if _, err := tx.UriDef().Save(models.NewRestUriDef("API001", "S1", "svc")); err != nil {
			return err
		}
		// 嵌套调用复用同一事务
		return tx.Transaction(context.Background(), func(inner InterEntryRepo) error {
			def, err := inner.UriDef().FindByApiId("API001")
			require.NoError(t, err)
			require.NotNil(t, def)
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	def, err := entry.UriDef().FindByApiId("API001")
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestTransactionCommits(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := NewRepoEntry(db)

	err := entry.Transaction(context.Background(), func(tx InterEntryRepo) error {
		_, err := tx.UriDef().Save(models.NewRestUriDef("API001", "S1", "svc"))
		return err
	})
	require.NoError(t, err)

	def, err := entry.UriDef().FindByApiId("API001")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "svc", def.SrvNm)
}

func TestTransactionRollsBackOnPanic(t *testing.T) {
	db := testutil.NewTestDB(t)
	entry := NewRepoEntry(db)

	assert.Panics(t, func() {
		_ = entry.Transaction(context.Background(), func(tx InterEntryRepo) error {
			_, err := tx.UriDef().Save(models.NewRestUriDef("API001", "S1", "svc"))
			require.NoError(t, err)
			panic("boom")
		})
	})

	def, err := entry.UriDef().FindByApiId("API001")
	require.NoError(t, err)
	assert.Nil(t, def)
}
