package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		Term: "2025-2",
		Chairs: []Catedra{
			{ID: "PS-34", Program: ProgramPS, CatedraID: 34, MateriaName: "Psicología General", DocenteTitular: "Ana Núñez"},
			{ID: "PS-12", Program: ProgramPS, CatedraID: 12, MateriaName: "Estadística", DocenteTitular: "Luis Gómez"},
			{ID: "PS-10", Program: ProgramPS, CatedraID: 10, MateriaName: "Estadística", DocenteTitular: "Marta Ríos"},
			{ID: "LM-3", Program: ProgramLM, CatedraID: 3, MateriaName: "Música I", DocenteTitular: "Pedro Paz"},
		},
		Sections: []Section{
			{ID: "s-teo-1", Program: ProgramPS, CatedraID: 34, Kind: KindLecture, Label: "1"},
			{ID: "s-prac-2", Program: ProgramPS, CatedraID: 34, Kind: KindPractical, Label: "2"},
			{ID: "s-prac-1", Program: ProgramPS, CatedraID: 34, Kind: KindPractical, Label: "1"},
			{ID: "lm-prac", Program: ProgramLM, CatedraID: 34, Kind: KindPractical, Label: "1"},
		},
		Meets: []Meet{
			{ID: "m1", SectionID: "s-prac-1", DayNum: 1, StartMin: 540, EndMin: 630},
			{ID: "m2", SectionID: "s-teo-1", DayNum: 2, StartMin: 600, EndMin: 720},
			{ID: "m3", SectionID: "s-prac-1", DayNum: 4, StartMin: 540, EndMin: 630},
		},
	}
}

func TestCatalog_ChairsByProgram_SortedByNameThenID(t *testing.T) {
	got := sampleCatalog().ChairsByProgram(ProgramPS, "")
	require.Len(t, got, 3)
	assert.Equal(t, "PS-10", got[0].ID)
	assert.Equal(t, "PS-12", got[1].ID)
	assert.Equal(t, "PS-34", got[2].ID)
}

func TestCatalog_ChairsByProgram_AccentInsensitiveSearch(t *testing.T) {
	c := sampleCatalog()

	got := c.ChairsByProgram(ProgramPS, "psicologia")
	require.Len(t, got, 1)
	assert.Equal(t, "PS-34", got[0].ID)

	got = c.ChairsByProgram(ProgramPS, "NUNEZ")
	require.Len(t, got, 1, "instructor names are searched too")

	assert.Empty(t, c.ChairsByProgram(ProgramPS, "musica"), "other programs are excluded")
}

func TestCatalog_PracticalsForChair(t *testing.T) {
	got := sampleCatalog().PracticalsForChair(ProgramPS, 34)
	require.Len(t, got, 2)
	assert.Equal(t, "s-prac-1", got[0].ID)
	assert.Equal(t, "s-prac-2", got[1].ID)
}

func TestCatalog_MeetsForAndBySection(t *testing.T) {
	c := sampleCatalog()
	meets := c.MeetsFor(NewIDSet("s-prac-1"))
	require.Len(t, meets, 2)
	assert.Equal(t, "m1", meets[0].ID)
	assert.Equal(t, "m3", meets[1].ID)

	by := c.MeetsBySection()
	assert.Len(t, by["s-prac-1"], 2)
	assert.Len(t, by["s-teo-1"], 1)
}

func TestCatalog_PracticalIDs(t *testing.T) {
	ids := sampleCatalog().PracticalIDs()
	assert.Equal(t, []string{"lm-prac", "s-prac-1", "s-prac-2"}, ids.Sorted())
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	assert.True(t, c.Empty())
	_, ok := c.SectionByID("x")
	assert.False(t, ok)
	assert.Nil(t, c.MeetsFor(NewIDSet("x")))
	assert.Empty(t, c.PracticalIDs())
}
