package titleimport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/models"
	"github.com/artikelsmederij/artikel-generator-api/pkg/api_client/testutil"
	"github.com/artikelsmederij/artikel-generator-api/pkg/titleimport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SkipsHeader(t *testing.T) {
	titles, err := titleimport.Parse(strings.NewReader("title\nX\nY\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, titles)
}

func TestParse_HeaderAlwaysDiscarded(t *testing.T) {
	// Ook zonder echte headerrij verdwijnt de eerste rij.
	titles, err := titleimport.Parse(strings.NewReader("X\nY\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, titles)
}

func TestParse_TrimsAndSkipsBlanks(t *testing.T) {
	titles, err := titleimport.Parse(strings.NewReader("title\n  A  \n\nB\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, titles)
}

func TestParse_Empty(t *testing.T) {
	titles, err := titleimport.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestImportCSV(t *testing.T) {
	db := testutil.NewTestDB(t)

	path := filepath.Join(t.TempDir(), "titels.csv")
	require.NoError(t, os.WriteFile(path, []byte("title\nX\nY\n"), 0o600))

	result, err := titleimport.ImportCSV(context.Background(), db, titleimport.Options{
		CSVPath: path,
		OwnerID: "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Inserted)

	var count int64
	require.NoError(t, db.Model(&models.Article{}).Where("status = ?", models.StatusPending).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestImportCSV_DryRun(t *testing.T) {
	db := testutil.NewTestDB(t)

	path := filepath.Join(t.TempDir(), "titels.csv")
	require.NoError(t, os.WriteFile(path, []byte("title\nX\n"), 0o600))

	result, err := titleimport.ImportCSV(context.Background(), db, titleimport.Options{
		CSVPath: path,
		DryRun:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Skipped)

	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
