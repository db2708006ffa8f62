package domain

// TalkState is the deliberation state of a talk in Conference Hall
type TalkState string

const (
	TalkStateSubmitted TalkState = "submitted"
	TalkStateAccepted  TalkState = "accepted"
	TalkStateConfirmed TalkState = "confirmed"
	TalkStateRejected  TalkState = "rejected"
	TalkStateDeclined  TalkState = "declined"
	TalkStateDraft     TalkState = "draft"
)

// selectedTalkStates lists the states that make a talk part of the program
var selectedTalkStates = map[TalkState]bool{
	TalkStateConfirmed: true,
	TalkStateAccepted:  true,
}

// IsSelected returns true if a talk in this state belongs on the site
func (s TalkState) IsSelected() bool {
	return selectedTalkStates[s]
}

// Event is the full event document returned by the Conference Hall API
type Event struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Address         Address         `json:"address"`
	ConferenceDates ConferenceDates `json:"conferenceDates"`
	Categories      []Category      `json:"categories"`
	Formats         []Format        `json:"formats"`
	Talks           []Talk          `json:"talks"`
	Speakers        []Speaker       `json:"speakers"`
}

// Address is the geocoded venue address of an event
type Address struct {
	FormattedAddress string   `json:"formattedAddress"`
	Locality         NamePair `json:"locality"`
	Country          NamePair `json:"country"`
	LatLng           LatLng   `json:"latLng"`
}

// NamePair holds the short and long names of a locality or a country
type NamePair struct {
	ShortName string `json:"short_name"`
	LongName  string `json:"long_name"`
}

// LatLng is a geographic coordinate
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ConferenceDates holds the first and last day of the event
type ConferenceDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Talk is a proposal submitted to the event
type Talk struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	State      TalkState `json:"state"`
	Level      string    `json:"level"`
	Abstract   string    `json:"abstract"`
	Language   string    `json:"language"`
	Categories string    `json:"categories"`
	Formats    string    `json:"formats"`
	Speakers   []string  `json:"speakers"`
}

// Speaker is a speaker profile as known by Conference Hall
type Speaker struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	PhotoURL    string `json:"photoURL"`
	City        string `json:"city"`
	Twitter     string `json:"twitter"`
	Github      string `json:"github"`
}

// Category is a talk track
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Format is a talk format (quickie, conference, workshop...)
type Format struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
