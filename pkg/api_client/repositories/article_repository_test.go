package repositories_test

import (
	"context"
	"testing"
	"time"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/repositories"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	created, err := repo.CreateBatch(context.Background(), []string{"A", "B", "C"}, &owner)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	articles, err := repo.GetArticlesByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
	for _, article := range articles {
		assert.Equal(t, models.StatusPending, article.Status)
		assert.Empty(t, article.Content)
		assert.Nil(t, article.Error)
		assert.Nil(t, article.CompletedAt)
	}
}

func TestCreateBatch_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)

	created, err := repo.CreateBatch(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestGetArticleByID_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)

	article, err := repo.GetArticleByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, article)
}

func TestClaimProcessing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	_, err := repo.CreateBatch(context.Background(), []string{"A"}, &owner)
	require.NoError(t, err)
	articles, err := repo.GetArticlesByOwner(context.Background(), owner)
	require.NoError(t, err)
	id := articles[0].Id

	claimed, err := repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, claimed)

	// Tweede claim verliest: het artikel staat al in processing.
	claimed, err = repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, claimed)

	article, err := repo.GetArticleByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, article.Status)
}

func TestClaimProcessing_AfterTerminalState(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	_, err := repo.CreateBatch(context.Background(), []string{"A"}, &owner)
	require.NoError(t, err)
	articles, _ := repo.GetArticlesByOwner(context.Background(), owner)
	id := articles[0].Id

	claimed, err := repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, repo.MarkFailed(context.Background(), id, "openai: boom"))

	// Een failed artikel mag opnieuw getriggerd worden; de claim wist de
	// oude uitkomst.
	claimed, err = repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, claimed)

	article, err := repo.GetArticleByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, article.Status)
	assert.Nil(t, article.Error)
	assert.Nil(t, article.CompletedAt)
}

func TestMarkCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	_, err := repo.CreateBatch(context.Background(), []string{"A"}, &owner)
	require.NoError(t, err)
	articles, _ := repo.GetArticlesByOwner(context.Background(), owner)
	id := articles[0].Id

	_, err = repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, repo.MarkCompleted(context.Background(), id, "De tekst."))

	article, err := repo.GetArticleByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, article.Status)
	assert.Equal(t, "De tekst.", article.Content)
	assert.Nil(t, article.Error)
	assert.NotNil(t, article.CompletedAt)
}

func TestMarkCompleted_RequiresContent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)

	err := repo.MarkCompleted(context.Background(), "id", "")
	assert.ErrorIs(t, err, repositories.ErrContentRequired)
}

func TestMarkFailed(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	_, err := repo.CreateBatch(context.Background(), []string{"A"}, &owner)
	require.NoError(t, err)
	articles, _ := repo.GetArticlesByOwner(context.Background(), owner)
	id := articles[0].Id

	_, err = repo.ClaimProcessing(context.Background(), id)
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(context.Background(), id, "all providers failed: openai: x; anthropic: y"))

	article, err := repo.GetArticleByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFailed, article.Status)
	require.NotNil(t, article.Error)
	assert.Contains(t, *article.Error, "openai")
	assert.Contains(t, *article.Error, "anthropic")
	assert.NotNil(t, article.CompletedAt)
	assert.Empty(t, article.Content)
}

func TestMarkFailed_RequiresCause(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)

	err := repo.MarkFailed(context.Background(), "id", "")
	assert.ErrorIs(t, err, repositories.ErrErrorRequired)
}

func TestGetStuckProcessing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewArticleRepository(db)
	owner := "user-1"

	_, err := repo.CreateBatch(context.Background(), []string{"A", "B"}, &owner)
	require.NoError(t, err)
	articles, _ := repo.GetArticlesByOwner(context.Background(), owner)

	_, err = repo.ClaimProcessing(context.Background(), articles[0].Id)
	require.NoError(t, err)

	// Niets is ouder dan een cutoff in het verleden.
	stuck, err := repo.GetStuckProcessing(context.Background(), time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, stuck)

	// Met een cutoff in de toekomst telt het claimede artikel als stuck.
	stuck, err = repo.GetStuckProcessing(context.Background(), time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, articles[0].Id, stuck[0].Id)
}
