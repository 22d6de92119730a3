package glyph

import "fmt"

// Glyph pairs a rendered symbol with its meaning and accent color. The color
// is a lipgloss/ANSI 256 palette index kept as a string so both the TUI and
// plain printers can consume it.
type Glyph struct {
	Symbol  string
	Meaning string
	Color   string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
)

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func (g Glyph) String() string {
	return g.Symbol
}

// Platform is the closed set of social targets a post can be planned for.
type Platform string

const (
	Instagram Platform = "instagram"
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	YouTube   Platform = "youtube"
	TikTok    Platform = "tiktok"
)

// Platforms lists every platform in display order.
func Platforms() []Platform {
	return []Platform{Instagram, Twitter, LinkedIn, YouTube, TikTok}
}

var platformGlyphs = map[Platform]Glyph{
	Instagram: {Symbol: "●", Meaning: "instagram", Color: "205"},
	Twitter:   {Symbol: "●", Meaning: "twitter", Color: "39"},
	LinkedIn:  {Symbol: "●", Meaning: "linkedin", Color: "27"},
	YouTube:   {Symbol: "●", Meaning: "youtube", Color: "196"},
	TikTok:    {Symbol: "●", Meaning: "tiktok", Color: "250"},
}

// ParsePlatform resolves a platform name to its closed enum value.
func ParsePlatform(v string) (Platform, error) {
	p := Platform(v)
	if _, ok := platformGlyphs[p]; !ok {
		return "", fmt.Errorf("glyph: unknown platform %q", v)
	}
	return p, nil
}

func (p Platform) Valid() bool {
	_, ok := platformGlyphs[p]
	return ok
}

func (p Platform) Glyph() Glyph {
	if g, ok := platformGlyphs[p]; ok {
		return g
	}
	return Glyph{Symbol: "·", Meaning: string(p), Color: "244"}
}

func (p Platform) String() string {
	return string(p)
}

// ContentType is the closed set of content formats.
type ContentType string

const (
	Post    ContentType = "post"
	Reel    ContentType = "reel"
	Story   ContentType = "story"
	Article ContentType = "article"
	Video   ContentType = "video"
)

// ContentTypes lists every content format in display order.
func ContentTypes() []ContentType {
	return []ContentType{Post, Reel, Story, Article, Video}
}

var contentGlyphs = map[ContentType]Glyph{
	Post:    {Symbol: "▤", Meaning: "post", Color: "15"},
	Reel:    {Symbol: "▶", Meaning: "reel", Color: "213"},
	Story:   {Symbol: "◉", Meaning: "story", Color: "220"},
	Article: {Symbol: "≡", Meaning: "article", Color: "75"},
	Video:   {Symbol: "▶", Meaning: "video", Color: "203"},
}

// ParseContentType resolves a content format name to its enum value.
func ParseContentType(v string) (ContentType, error) {
	t := ContentType(v)
	if _, ok := contentGlyphs[t]; !ok {
		return "", fmt.Errorf("glyph: unknown content type %q", v)
	}
	return t, nil
}

func (t ContentType) Valid() bool {
	_, ok := contentGlyphs[t]
	return ok
}

func (t ContentType) Glyph() Glyph {
	if g, ok := contentGlyphs[t]; ok {
		return g
	}
	return Glyph{Symbol: "·", Meaning: string(t), Color: "244"}
}

func (t ContentType) String() string {
	return string(t)
}

// Status tracks where a post sits in its lifecycle.
type Status string

const (
	Draft     Status = "draft"
	Scheduled Status = "scheduled"
	Published Status = "published"
)

var statusGlyphs = map[Status]Glyph{
	Draft:     {Symbol: "○", Meaning: "draft", Color: "244"},
	Scheduled: {Symbol: "◍", Meaning: "scheduled", Color: "40"},
	Published: {Symbol: "✔", Meaning: "published", Color: "34"},
}

// ParseStatus resolves a status name to its enum value.
func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if _, ok := statusGlyphs[s]; !ok {
		return "", fmt.Errorf("glyph: unknown status %q", v)
	}
	return s, nil
}

func (s Status) Valid() bool {
	_, ok := statusGlyphs[s]
	return ok
}

func (s Status) Glyph() Glyph {
	if g, ok := statusGlyphs[s]; ok {
		return g
	}
	return Glyph{Symbol: "·", Meaning: string(s), Color: "244"}
}

func (s Status) String() string {
	return string(s)
}
