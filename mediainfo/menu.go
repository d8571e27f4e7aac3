package mediainfo

import (
	"strings"
	"time"
)

// Public types (alphabetical)

// Chapter is one entry of a menu chapter table.
type Chapter struct {
	// Language is the language code of the title, when the container
	// stores one.
	Language string

	// Position is the chapter start offset from the beginning of the
	// timeline.
	Position time.Duration

	// Title is the chapter title, which may be empty.
	Title string
}

// MenuStream is the typed facade over one menu stream.
type MenuStream struct {
	Stream
}

// Public functions (alphabetical)

// Menu returns the facade over the menu stream at index.
func (f *File) Menu(index int) *MenuStream {
	return &MenuStream{Stream{file: f, kind: StreamMenu, index: index}}
}

// Menus returns facades over every menu stream in the container.
func (f *File) Menus() []*MenuStream {
	streams := make([]*MenuStream, f.StreamCount(StreamMenu))
	for i := range streams {
		streams[i] = f.Menu(i)
	}
	return streams
}

// Public methods (alphabetical)

// Chapters returns the chapter table of the menu, in timeline order. Menus
// without chapters return an empty slice.
func (m *MenuStream) Chapters() []Chapter {
	begin := m.ChaptersPosBegin()
	end := m.ChaptersPosEnd()
	if end <= begin {
		return nil
	}
	chapters := make([]Chapter, 0, end-begin)
	for pos := begin; pos < end; pos++ {
		offset := m.file.GetByIndex(StreamMenu, m.index, pos, InfoName)
		position, ok := parseClockDuration(offset)
		if !ok {
			continue
		}
		language, title := splitChapterTitle(m.file.GetByIndex(StreamMenu, m.index, pos, InfoText))
		chapters = append(chapters, Chapter{
			Language: language,
			Position: position,
			Title:    title,
		})
	}
	return chapters
}

// ChaptersPosBegin returns the parameter index of the first chapter entry,
// or 0 when the menu has no chapters.
func (m *MenuStream) ChaptersPosBegin() int {
	return m.paramInt(ParamChaptersPosBegin)
}

// ChaptersPosEnd returns the parameter index one past the last chapter
// entry, or 0 when the menu has no chapters.
func (m *MenuStream) ChaptersPosEnd() int {
	return m.paramInt(ParamChaptersPosEnd)
}

// Private functions (alphabetical)

// splitChapterTitle splits the "language:title" shape of a chapter entry.
// The language part is only honored when it looks like a two or three
// letter code, so titles containing colons survive intact.
func splitChapterTitle(value string) (language, title string) {
	colon := strings.IndexByte(value, ':')
	if colon == 2 || colon == 3 {
		prefix := value[:colon]
		if isAlpha(prefix) {
			return prefix, value[colon+1:]
		}
	}
	return "", value
}

// isAlpha reports whether a string is non-empty ASCII letters only.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
