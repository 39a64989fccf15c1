package banlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source, data string) ParseResult {
	t.Helper()
	result, err := ParseChangeSet(testCatalog(), source, []byte(data), discardLogger())
	require.NoError(t, err)
	return result
}

func TestParseChangeSetResolvesEverySection(t *testing.T) {
	result := parse(t, "changes/jj2-2002-p1.ini", `
[banned]
Pot of Greed
raigeki

[limited]
Mind Control

[semilimited]
Monster Reborn

[unlimited]
Dark Magician
`)

	require.True(t, result.Valid())
	cs := result.ChangeSet
	assert.Equal(t, "jj2-2002-p1", cs.Name)
	assert.Equal(t, "changes/jj2-2002-p1.ini", cs.Source)
	assert.Equal(t, 5, cs.Len())

	banned := cs.Cards(Banned)
	require.Len(t, banned, 2)
	assert.Equal(t, int64(55144522), banned[0].ID)
	assert.Equal(t, "Raigeki", banned[1].Name)

	require.Len(t, cs.Cards(Limited), 1)
	assert.Equal(t, "Change of Heart", cs.Cards(Limited)[0].Name)
	assert.Equal(t, "Monster Reborn", cs.Cards(Semilimited)[0].Name)
	assert.Equal(t, "Dark Magician", cs.Cards(Unlimited)[0].Name)
}

func TestParseChangeSetMissingSectionsAreEmpty(t *testing.T) {
	result := parse(t, "jj2-2003-p1.ini", "[limited]\nRaigeki\n")

	require.True(t, result.Valid())
	assert.Empty(t, result.ChangeSet.Cards(Banned))
	assert.Empty(t, result.ChangeSet.Cards(Semilimited))
	assert.Len(t, result.ChangeSet.Cards(Limited), 1)
}

func TestParseChangeSetEmptyFile(t *testing.T) {
	result := parse(t, "jj2-2002-p0.ini", "")

	require.True(t, result.Valid())
	assert.Equal(t, 0, result.ChangeSet.Len())
}

func TestParseChangeSetRejectsUnknownCard(t *testing.T) {
	result := parse(t, "jj2-2002-p1.ini", "[banned]\nPot of Greedd\nRaigeki\n")

	assert.False(t, result.Valid())
	assert.Nil(t, result.ChangeSet)
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, Diagnostic{
		Source:  "jj2-2002-p1.ini",
		Section: "banned",
		Name:    "Pot of Greedd",
		Reason:  ReasonUnknownCard,
	}, result.Diagnostics[0])
}

func TestParseChangeSetRejectsCardInTwoTiers(t *testing.T) {
	result := parse(t, "jj2-2002-p1.ini", "[banned]\nRaigeki\n\n[limited]\nraigeki\n")

	assert.False(t, result.Valid())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonDuplicateCard, result.Diagnostics[0].Reason)
	assert.Equal(t, "limited", result.Diagnostics[0].Section)
}

func TestParseChangeSetRejectsAlternateNameDuplicate(t *testing.T) {
	result := parse(t, "jj2-2002-p1.ini", "[limited]\nChange of Heart\nMind Control\n")

	assert.False(t, result.Valid())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonDuplicateCard, result.Diagnostics[0].Reason)
}

func TestParseChangeSetRejectsRepeatedLine(t *testing.T) {
	result, err := ParseChangeSet(testCatalog(), "jj2-2002-p1.ini", []byte("[banned]\nRaigeki\nRaigeki\n"), discardLogger())
	if err == nil {
		assert.False(t, result.Valid())
	}
}

func TestParseChangeSetRejectsUnknownSection(t *testing.T) {
	result := parse(t, "jj2-2002-p1.ini", "[forbidden]\nRaigeki\n")

	assert.False(t, result.Valid())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonUnknownSection, result.Diagnostics[0].Reason)
	assert.Equal(t, "forbidden", result.Diagnostics[0].Name)
}

func TestParseChangeSetRejectsEntryOutsideSection(t *testing.T) {
	result := parse(t, "jj2-2002-p1.ini", "Raigeki\n[banned]\nPot of Greed\n")

	assert.False(t, result.Valid())
	require.Len(t, result.Diagnostics, 1)
	assert.Equal(t, ReasonOutsideSection, result.Diagnostics[0].Reason)
	assert.Equal(t, "Raigeki", result.Diagnostics[0].Name)
}

func TestParseResultErr(t *testing.T) {
	result := parse(t, "bad.ini", "[banned]\nNope\n")

	err := result.Err("bad.ini")
	var invalid *InvalidRecordError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "bad.ini", invalid.Source)
	assert.Contains(t, err.Error(), `unknown card "Nope"`)

	assert.NoError(t, parse(t, "good.ini", "[banned]\nRaigeki\n").Err("good.ini"))
}

func TestChangeSetName(t *testing.T) {
	assert.Equal(t, "jj2-2004-p2", ChangeSetName("data/banlist/changes/jj2-2004-p2.ini"))
	assert.Equal(t, "jr-2005", ChangeSetName("jr-2005.backup.ini"))
	assert.Equal(t, "README", ChangeSetName("README"))
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
}

func TestDiscoverHistorySortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"jj2-2003-p1.ini": "",
		"jj2-2002-p2.ini": "",
		"jj2-2002-p1.ini": "",
		"jr-2005.ini":     "",
		"notes.txt":       "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jj2-drafts"), 0o750))

	paths, err := DiscoverHistory(dir, "jj2-")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "jj2-2002-p1.ini"),
		filepath.Join(dir, "jj2-2002-p2.ini"),
		filepath.Join(dir, "jj2-2003-p1.ini"),
	}, paths)
}

func TestDiscoverHistoryMissingDirectory(t *testing.T) {
	_, err := DiscoverHistory(filepath.Join(t.TempDir(), "missing"), "jj2-")
	assert.Error(t, err)
}

func TestFindJuniorRoyale(t *testing.T) {
	dir := t.TempDir()

	path, err := FindJuniorRoyale(dir, "jr-")
	require.NoError(t, err)
	assert.Empty(t, path)

	writeFiles(t, dir, map[string]string{"jr-2005.ini": "", "jr-notes.txt": ""})
	path, err = FindJuniorRoyale(dir, "jr-")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "jr-2005.ini"), path)

	writeFiles(t, dir, map[string]string{"jr-2006.ini": ""})
	_, err = FindJuniorRoyale(dir, "jr-")
	assert.ErrorIs(t, err, ErrMultipleJuniorRoyale)
}

func TestLoadHistory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"jj2-2002-p1.ini": "[banned]\nPot of Greed\n",
		"jj2-2002-p2.ini": "[limited]\nRaigeki\n",
	})

	changeSets, err := LoadHistory(testCatalog(), dir, "jj2-", discardLogger())
	require.NoError(t, err)
	require.Len(t, changeSets, 2)
	assert.Equal(t, "jj2-2002-p1", changeSets[0].Name)
	assert.Equal(t, "jj2-2002-p2", changeSets[1].Name)
}

func TestLoadHistoryAbortsOnFirstInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"jj2-2002-p1.ini": "[banned]\nPot of Greed\n",
		"jj2-2002-p2.ini": "[banned]\nRaigeki\n[limited]\nRaigeki\n",
		"jj2-2003-p1.ini": "[banned]\nUnknown Card\n",
	})

	changeSets, err := LoadHistory(testCatalog(), dir, "jj2-", discardLogger())
	assert.Nil(t, changeSets)

	var invalid *InvalidRecordError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, filepath.Join(dir, "jj2-2002-p2.ini"), invalid.Source)
	require.Len(t, invalid.Diagnostics, 1)
	assert.Equal(t, ReasonDuplicateCard, invalid.Diagnostics[0].Reason)
}
