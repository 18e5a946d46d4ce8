package locale

import (
	"fmt"
	"strings"

	"github.com/orgball2608/insta-profile-telegram-bot/pkg/config"
	"go.uber.org/fx"
)

const (
	Start               = "start"
	InvalidURL          = "invalid_url"
	PrivateProfile      = "private_profile"
	NoStories           = "no_stories"
	Error               = "error"
	SessionExpired      = "session_expired"
	NotFound            = "not_found"
	RateLimited         = "rate_limited"
	MenuPrompt          = "menu_prompt"
	ButtonProfilePic    = "button_profile_pic"
	ButtonStory         = "button_story"
	ButtonHighlights    = "button_highlights"
	ButtonProfileInfo   = "button_profile_info"
	ButtonPrev          = "button_prev"
	ButtonNext          = "button_next"
	ProfilePicCaption   = "profile_pic_caption"
	FileTooLarge        = "file_too_large"
	StoriesSent         = "stories_sent"
	NoHighlights        = "no_highlights"
	HighlightsMenu      = "highlights_menu"
	HighlightsEmptyPage = "highlights_empty_page"
	HighlightNotFound   = "highlight_not_found"
	HighlightProcessing = "highlight_processing"
	HighlightSent       = "highlight_sent"
	ProfileInfo         = "profile_info"
	Yes                 = "yes"
	No                  = "no"
)

const fallbackLanguage = "en"

var builtin = map[string]map[string]string{
	"en": {
		Start:               "👋 Send me an Instagram profile link and pick what to fetch.",
		InvalidURL:          "❌ That is not a valid Instagram profile URL.",
		PrivateProfile:      "🔒 This profile is private and not followed.",
		NoStories:           "📭 No active stories.",
		Error:               "⚠️ Something went wrong, please try again later.",
		SessionExpired:      "❌ Session expired, please send the URL again.",
		NotFound:            "❓ Profile not found.",
		RateLimited:         "⏳ Too many requests, slow down a little.",
		MenuPrompt:          "Choose a feature for @%s:",
		ButtonProfilePic:    "📷 Profile picture",
		ButtonStory:         "📹 Story",
		ButtonHighlights:    "🌟 Highlights",
		ButtonProfileInfo:   "📊 Profile info",
		ButtonPrev:          "⏪ Back",
		ButtonNext:          "⏩ Next",
		ProfilePicCaption:   "📸 Profile picture @%s",
		FileTooLarge:        "⚠️ File exceeds the size limit",
		StoriesSent:         "📤 %d stories sent",
		NoHighlights:        "🌟 No highlights available",
		HighlightsMenu:      "🌟 Highlights of @%s (page %d):",
		HighlightsEmptyPage: "🌟 No more highlights on page %d.",
		HighlightNotFound:   "❌ Highlight not found",
		HighlightProcessing: "🔄 Processing %d items from highlight '%s'",
		HighlightSent:       "✅ %d items from highlight '%s' sent",
		ProfileInfo:         "📊 Profile info @%s:\n👤 Name: %s\n📝 Bio: %s\n✅ Verified: %s\n🏢 Business: %s\n🔗 Followers: %s\n👀 Following: %s\n📌 Posts: %s",
		Yes:                 "Yes",
		No:                  "No",
	},
	"id": {
		Start:               "👋 Kirim link profil Instagram lalu pilih fitur.",
		InvalidURL:          "❌ URL profil Instagram tidak valid.",
		PrivateProfile:      "🔒 Profil ini privat dan belum diikuti.",
		NoStories:           "📭 Tidak ada story aktif.",
		Error:               "⚠️ Terjadi kesalahan, silakan coba lagi nanti.",
		SessionExpired:      "❌ Session expired, silakan kirim URL lagi",
		NotFound:            "❓ Profil tidak ditemukan.",
		RateLimited:         "⏳ Terlalu banyak permintaan, tunggu sebentar.",
		MenuPrompt:          "Pilih fitur untuk @%s:",
		ButtonProfilePic:    "📷 Foto Profil",
		ButtonStory:         "📹 Story",
		ButtonHighlights:    "🌟 Highlights",
		ButtonProfileInfo:   "📊 Info Profil",
		ButtonPrev:          "⏪ Kembali",
		ButtonNext:          "⏩ Lanjutkan",
		ProfilePicCaption:   "📸 Foto Profil @%s",
		FileTooLarge:        "⚠️ File melebihi batas ukuran",
		StoriesSent:         "📤 Total %d story berhasil dikirim",
		NoHighlights:        "🌟 Tidak ada highlights yang tersedia",
		HighlightsMenu:      "🌟 Highlights @%s (halaman %d):",
		HighlightsEmptyPage: "🌟 Tidak ada highlights lagi di halaman %d.",
		HighlightNotFound:   "❌ Highlight tidak ditemukan",
		HighlightProcessing: "🔄 Memproses %d item dari highlight '%s'",
		HighlightSent:       "✅ %d item dari highlight '%s' berhasil dikirim",
		ProfileInfo:         "📊 Info Profil @%s:\n👤 Nama: %s\n📝 Bio: %s\n✅ Terverifikasi: %s\n🏢 Bisnis: %s\n🔗 Followers: %s\n👀 Following: %s\n📌 Post: %s",
		Yes:                 "Ya",
		No:                  "Tidak",
	},
}

type Opts struct {
	fx.In

	Config *config.Config
}

// Catalog resolves texts by language. Tables from the configuration override
// the built-in ones key by key.
type Catalog struct {
	tables   map[string]map[string]string
	fallback string
}

func New(opts Opts) *Catalog {
	return NewCatalog(opts.Config.Bot.DefaultLanguage, opts.Config.Bot.Languages)
}

func NewCatalog(defaultLanguage string, overrides map[string]map[string]string) *Catalog {
	tables := make(map[string]map[string]string, len(builtin)+len(overrides))
	for lang, table := range builtin {
		tables[lang] = copyTable(table)
	}
	for lang, table := range overrides {
		lang = strings.ToLower(lang)
		if tables[lang] == nil {
			tables[lang] = make(map[string]string, len(table))
		}
		for k, v := range table {
			tables[lang][k] = v
		}
	}

	fallback := strings.ToLower(defaultLanguage)
	if _, ok := tables[fallback]; !ok {
		fallback = fallbackLanguage
	}

	return &Catalog{tables: tables, fallback: fallback}
}

// Language picks the table for a Telegram language code such as "id" or
// "en-US", or the default language when none matches.
func (c *Catalog) Language(code string) string {
	code = strings.ToLower(code)
	if _, ok := c.tables[code]; ok {
		return code
	}
	if base, _, found := strings.Cut(code, "-"); found {
		if _, ok := c.tables[base]; ok {
			return base
		}
	}
	return c.fallback
}

// Text formats the entry for key. Missing keys fall back to the default
// language, then to English, then to the key itself.
func (c *Catalog) Text(lang, key string, args ...any) string {
	format := key
	for _, l := range []string{lang, c.fallback, fallbackLanguage} {
		if v, ok := c.tables[l][key]; ok {
			format = v
			break
		}
	}

	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// YesNo renders a flag in lang.
func (c *Catalog) YesNo(lang string, v bool) string {
	if v {
		return c.Text(lang, Yes)
	}
	return c.Text(lang, No)
}

func copyTable(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
