package models

// Language is the fixed set of catalog languages. The catalog does not
// allow free-form language values; anything outside this set is a
// validation error.
type Language string

const (
	LangEnglish Language = "english"
	LangGerman  Language = "german"
	LangFrench  Language = "french"
	LangRussian Language = "russian"
	LangItalian Language = "italian"
	LangSpanish Language = "spanish"
	LangChinese Language = "chinese"
)

// Languages lists every valid language, in display order.
var Languages = []Language{
	LangEnglish, LangGerman, LangFrench, LangRussian,
	LangItalian, LangSpanish, LangChinese,
}

func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Genre is the fixed set of catalog genres.
type Genre string

const (
	GenreFable      Genre = "fable"
	GenreNovella    Genre = "novella"
	GenrePoem       Genre = "poem"
	GenreProse      Genre = "prose"
	GenrePlay       Genre = "play"
	GenreShortStory Genre = "short story"
	GenreNovel      Genre = "novel"
	GenreFairyTale  Genre = "fairy tale"
	GenrePoemVerse  Genre = "poem-verse"
)

var Genres = []Genre{
	GenreFable, GenreNovella, GenrePoem, GenreProse, GenrePlay,
	GenreShortStory, GenreNovel, GenreFairyTale, GenrePoemVerse,
}

func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}
