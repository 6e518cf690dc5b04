package regulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectByInstitutionType(t *testing.T) {
	assert.Equal(t, "55", Select(true).ArticleRoot)
	assert.Equal(t, "164", Select(false).ArticleRoot)
	assert.Equal(t, "2", Select(false).ArticleSub)
}

func TestMiddleSchoolDataset(t *testing.T) {
	require.Len(t, MiddleSchool.Categories, 3)

	uyarma, ok := MiddleSchool.Category("uyarma")
	require.True(t, ok)
	assert.Equal(t, "Uyarma", uyarma.Title)
	assert.Len(t, uyarma.Items, 9)

	// Code 9 is absent from uyarma by regulation, 10 is present.
	_, ok = uyarma.Article("9")
	assert.False(t, ok)
	item, ok := uyarma.Article("10")
	require.True(t, ok)
	assert.Equal(t, "Kılık ve kıyafetle ilgili kurallara uymamak", item.Text)

	kinama, ok := MiddleSchool.Category("kinama")
	require.True(t, ok)
	assert.Len(t, kinama.Items, 11)
	item, ok = kinama.Article("15")
	require.True(t, ok)
	assert.Equal(t, "Akran zorbalığı yapmak", item.Text)
}

func TestHighSchoolDataset(t *testing.T) {
	require.Len(t, HighSchool.Categories, 4)

	kinama, ok := HighSchool.Category("kinama")
	require.True(t, ok)
	assert.Len(t, kinama.Items, 18)

	// Turkish letters are valid article codes.
	item, ok := kinama.Article("ç")
	require.True(t, ok)
	assert.Contains(t, item.Text, "Tütün")

	orgun, ok := HighSchool.Category("orgun_disi")
	require.True(t, ok)
	assert.Equal(t, "Örgün Eğitim Dışına Çıkarma", orgun.Title)
	assert.Len(t, orgun.Items, 8)
}

func TestUnknownLookups(t *testing.T) {
	_, ok := HighSchool.Category("uyarma")
	assert.False(t, ok)

	kinama, _ := HighSchool.Category("kinama")
	_, ok = kinama.Article("zz")
	assert.False(t, ok)
}
