package domain

// Keyed is implemented by every site entity identified by a key
type Keyed interface {
	GetKey() string
}

// Session is a program entry as rendered on the site
type Session struct {
	Key          string   `json:"key"`
	Title        string   `json:"title"`
	ID           string   `json:"id"`
	Language     string   `json:"language"`
	Format       string   `json:"format"`
	Tags         []string `json:"tags"`
	Level        string   `json:"level"`
	Speakers     []string `json:"speakers"`
	VideoID      string   `json:"videoId"`
	Presentation string   `json:"presentation"`
	Draft        bool     `json:"draft"`
	Description  string   `json:"description"`
}

func (s Session) GetKey() string { return s.Key }

func (s Session) withEmptyLists() Session {
	s.Tags = emptyIfNil(s.Tags)
	s.Speakers = emptyIfNil(s.Speakers)
	return s
}

// SiteSpeaker is a speaker as rendered on the site
type SiteSpeaker struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	ID          string   `json:"id"`
	Feature     bool     `json:"feature"`
	Company     string   `json:"company"`
	City        string   `json:"city"`
	PhotoURL    string   `json:"photoURL"`
	Socials     []Social `json:"socials"`
	Draft       bool     `json:"draft"`
	Description string   `json:"description"`
}

func (s SiteSpeaker) GetKey() string { return s.Key }

func (s SiteSpeaker) withEmptyLists() SiteSpeaker {
	s.Socials = emptyIfNil(s.Socials)
	return s
}

// Social is a link to a social network profile
type Social struct {
	Icon string `json:"icon"`
	Link string `json:"link"`
}

// SiteCategory is a track as rendered on the site
type SiteCategory struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (c SiteCategory) GetKey() string { return c.Key }

// SiteFormat is a talk format as rendered on the site
type SiteFormat struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (f SiteFormat) GetKey() string { return f.Key }

// Info holds the event metadata shown on every page
type Info struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Address InfoAddress `json:"address"`
	Dates   Dates       `json:"dates"`
}

// InfoAddress is the venue address published on the site
type InfoAddress struct {
	FormattedAddress string   `json:"formattedAddress"`
	Locality         NamePair `json:"locality"`
	Country          NamePair `json:"country"`
	LatLng           LatLng   `json:"latLng"`
}

// Dates is the published event date range
type Dates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Room is a venue room used by the schedule
type Room struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SlotRow is the grid row span of a slot
type SlotRow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Slot is a time slot of the schedule. Start is an HH:MM time, Duration in minutes.
type Slot struct {
	Key      string  `json:"key"`
	Start    string  `json:"start"`
	Duration int     `json:"duration"`
	Row      SlotRow `json:"row"`
}

// ScheduleEntry places a session in a room during a slot
type ScheduleEntry struct {
	Session string `json:"session"`
	Room    string `json:"room"`
	Slot    string `json:"slot"`
}

// Schedule is the schedule add-on content
type Schedule struct {
	Rooms    []Room          `json:"rooms"`
	Slots    []Slot          `json:"slots"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// Sponsor is an event sponsor
type Sponsor struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Level   string `json:"level"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
}

// Member is a member of the organizing team
type Member struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Photo   string   `json:"photo"`
	Role    string   `json:"role"`
	Socials []Social `json:"socials"`
}

func (m Member) GetKey() string { return m.Key }

func (m Member) withEmptyLists() Member {
	m.Socials = emptyIfNil(m.Socials)
	return m
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Site is the complete data set used to build the static site
type Site struct {
	Info       Info            `json:"info"`
	Sessions   []Session       `json:"sessions"`
	Speakers   []SiteSpeaker   `json:"speakers"`
	Categories []SiteCategory  `json:"categories"`
	Formats    []SiteFormat    `json:"formats"`
	Rooms      []Room          `json:"rooms"`
	Slots      []Slot          `json:"slots"`
	Schedule   []ScheduleEntry `json:"schedule"`
	Sponsors   []Sponsor       `json:"sponsors"`
	Team       []Member        `json:"team"`
}
