package repositories

import (
	"cdax/testutil"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCourseRepo(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	repo := NewCourseRepo(db, testutil.Logger(t))

	first := testutil.SeedCourse(t, ctx, db, "first")
	second := testutil.SeedCourse(t, ctx, db, "second")

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	got, err := repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Title)

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	ok, err := repo.Exists(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChildReposOrderByID(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	modules := NewModuleRepo(db, log)
	videos := NewVideoRepo(db, log)
	assessments := NewAssessmentRepo(db, log)

	c1 := testutil.SeedCourse(t, ctx, db, "c1")
	c2 := testutil.SeedCourse(t, ctx, db, "c2")
	m1 := testutil.SeedModule(t, ctx, db, c1.ID, "m1")
	m2 := testutil.SeedModule(t, ctx, db, c2.ID, "m2")
	m3 := testutil.SeedModule(t, ctx, db, c1.ID, "m3")
	v1 := testutil.SeedVideo(t, ctx, db, m1.ID, "v1")
	v2 := testutil.SeedVideo(t, ctx, db, m3.ID, "v2")
	v3 := testutil.SeedVideo(t, ctx, db, m1.ID, "v3")
	testutil.SeedAssessment(t, ctx, db, m2.ID, "a1")

	byCourse, err := modules.FindByCourseID(ctx, c1.ID)
	require.NoError(t, err)
	require.Len(t, byCourse, 2)
	assert.Equal(t, m1.ID, byCourse[0].ID)
	assert.Equal(t, m3.ID, byCourse[1].ID)

	byCourses, err := modules.FindByCourseIDs(ctx, []uint{c1.ID, c2.ID})
	require.NoError(t, err)
	assert.Len(t, byCourses, 3)

	none, err := modules.FindByCourseIDs(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	moduleVideos, err := videos.FindByModuleID(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, moduleVideos, 2)
	assert.Equal(t, v1.ID, moduleVideos[0].ID)
	assert.Equal(t, v3.ID, moduleVideos[1].ID)

	allVideos, err := videos.FindByModuleIDs(ctx, []uint{m1.ID, m3.ID})
	require.NoError(t, err)
	require.Len(t, allVideos, 3)
	assert.Equal(t, []uint{v1.ID, v2.ID, v3.ID}, []uint{allVideos[0].ID, allVideos[1].ID, allVideos[2].ID})

	ok, err := assessments.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	moduleAssessments, err := assessments.FindByModuleID(ctx, m1.ID)
	require.NoError(t, err)
	assert.Empty(t, moduleAssessments)

	found, err := modules.FindByID(ctx, m2.ID)
	require.NoError(t, err)
	assert.Equal(t, c2.ID, found.CourseID)

	_, err = modules.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
