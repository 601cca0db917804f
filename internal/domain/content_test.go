package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindBannedWord(t *testing.T) {
	word, found := FindBannedWord("Лучшее КАЗИНО в городе!")
	assert.True(t, found)
	assert.Equal(t, "КАЗИНО", word)

	_, found = FindBannedWord("Уютный ресторан, казинос не найдено")
	assert.False(t, found)

	_, found = FindBannedWord("Бесплатно.")
	assert.True(t, found)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("79991234567"))
	assert.False(t, IsDigits("+7999"))
	assert.False(t, IsDigits(""))
}

func TestHasImageExtension(t *testing.T) {
	assert.True(t, HasImageExtension("menu/pasta.JPG"))
	assert.True(t, HasImageExtension("a.png"))
	assert.False(t, HasImageExtension("a.gif"))
}
