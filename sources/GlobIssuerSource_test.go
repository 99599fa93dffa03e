package sources

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dylanblandino12/moodys-data-quality-lab/core"
)

const issuersHeader = "issuer_id,issuer_code,issuer_name,country,industry,status,created_date,annual_revenue\n"

func TestGlobIssuerSource_LoadsAllMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"),
		[]byte(issuersHeader+"1,ACME,Acme,US,Tech,active,,100\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"),
		[]byte(issuersHeader+"2,GLOB,Globex,FR,Energy,active,,200\n3,INIT,Initech,DE,Tech,active,,300\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	source := &GlobIssuerSource{Directory: dir}
	issuers, err := source.Load()

	assert.NoError(t, err)
	assert.Len(t, issuers, 3)
}

func TestGlobIssuerSource_PatternFilters(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "issuers_2024.csv"),
		[]byte(issuersHeader+"1,ACME,Acme,US,Tech,active,,100\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"),
		[]byte(issuersHeader+"2,GLOB,Globex,FR,Energy,active,,200\n"), 0644))

	source := &GlobIssuerSource{Directory: dir, Pattern: "issuers_*.csv"}
	issuers, err := source.Load()

	assert.NoError(t, err)
	assert.Len(t, issuers, 1)
	assert.Equal(t, "ACME", issuers[0].IssuerCode)
}

func TestGlobIssuerSource_NoMatchingFiles(t *testing.T) {
	source := &GlobIssuerSource{Directory: t.TempDir()}
	_, err := source.Load()

	var sourceErr *core.DataSourceError
	assert.True(t, errors.As(err, &sourceErr))
}

func TestGlobIssuerSource_MissingDirectory(t *testing.T) {
	source := &GlobIssuerSource{Directory: filepath.Join(t.TempDir(), "missing")}
	_, err := source.Load()

	var sourceErr *core.DataSourceError
	assert.True(t, errors.As(err, &sourceErr))
}

func TestGlobIssuerSource_MalformedFileFailsTheLoad(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "good.csv"),
		[]byte(issuersHeader+"1,ACME,Acme,US,Tech,active,,100\n"), 0644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "bad.csv"),
		[]byte("issuer_id,wrong\n1,x\n"), 0644))

	source := &GlobIssuerSource{Directory: dir}
	_, err := source.Load()

	var sourceErr *core.DataSourceError
	assert.True(t, errors.As(err, &sourceErr))
}
