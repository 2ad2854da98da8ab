package importer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discoverarr/internal/radarr"
)

func TestResolveRootFolder(t *testing.T) {
	ctx := context.Background()

	lib := &fakeLibrary{roots: []radarr.RootFolder{{ID: 1, Path: "/movies"}, {ID: 2, Path: "/films"}}}

	path, err := ResolveRootFolder(ctx, lib, "")
	require.NoError(t, err)
	assert.Equal(t, "/movies", path)

	path, err = ResolveRootFolder(ctx, lib, " /override ")
	require.NoError(t, err)
	assert.Equal(t, "/override", path)

	_, err = ResolveRootFolder(ctx, &fakeLibrary{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no root folders")
}

func TestResolveQualityProfile(t *testing.T) {
	ctx := context.Background()
	lib := &fakeLibrary{profiles: []radarr.QualityProfile{
		{ID: 1, Name: "Any"},
		{ID: 3, Name: "HD-1080p"},
		{ID: 6, Name: "Ultra-HD"},
	}}

	id, err := ResolveQualityProfile(ctx, lib, "")
	require.NoError(t, err)
	assert.Equal(t, 1, id, "empty override selects the first profile")

	id, err = ResolveQualityProfile(ctx, lib, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, id, "numeric override passes through as an id")

	id, err = ResolveQualityProfile(ctx, lib, "hd-1080P")
	require.NoError(t, err)
	assert.Equal(t, 3, id, "name override matches case-insensitively")

	_, err = ResolveQualityProfile(ctx, lib, "4K Remux")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"4K Remux" not found`)

	_, err = ResolveQualityProfile(ctx, &fakeLibrary{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quality profiles")
}

func TestResolveTagsMixedNamesAndIDs(t *testing.T) {
	ctx := context.Background()
	lib := &fakeLibrary{
		tags:      []radarr.Tag{{ID: 1, Label: "horror"}},
		nextTagID: 100,
	}

	ids, err := ResolveTags(ctx, lib, "Horror,5,NewTag")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5, 100}, ids)
	assert.Equal(t, []string{"NewTag"}, lib.createdTags)
}

func TestResolveTagsDedupesPreservingOrder(t *testing.T) {
	ctx := context.Background()
	lib := &fakeLibrary{tags: []radarr.Tag{{ID: 1, Label: "horror"}}}

	ids, err := ResolveTags(ctx, lib, "Horror,5,horror,HORROR,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 5}, ids)
	assert.Empty(t, lib.createdTags)
}

func TestResolveTagsEmptyInput(t *testing.T) {
	ids, err := ResolveTags(context.Background(), &fakeLibrary{}, " , ,")
	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestResolveTagsCreatesOnceForNormalizedCollision(t *testing.T) {
	ctx := context.Background()
	lib := &fakeLibrary{nextTagID: 50}

	// Second token collides with the first only after normalization, so
	// the freshly created id is reused instead of creating twice.
	ids, err := ResolveTags(ctx, lib, "Café,cafe")
	require.NoError(t, err)
	assert.Equal(t, []int{50}, ids)
	assert.Equal(t, []string{"Café"}, lib.createdTags)
}

func TestNormalizeLabel(t *testing.T) {
	assert.Equal(t, "cafe", normalizeLabel("  Café "))
	assert.Equal(t, "horror", normalizeLabel("HORROR"))
	assert.Equal(t, "", normalizeLabel("   "))
}
