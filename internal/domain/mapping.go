package domain

import "strings"

// TalkToSession converts a selected talk into a site session.
// Format, tags and speakers are resolved against the event so that the
// session references other entities by their keys.
func TalkToSession(event *Event, talk Talk) Session {
	session := Session{
		Key:         BuildKey(talk.Title),
		Title:       talk.Title,
		ID:          talk.ID,
		Language:    talk.Language,
		Level:       talk.Level,
		Tags:        []string{},
		Speakers:    []string{},
		Description: talk.Abstract,
	}

	for _, f := range event.Formats {
		if f.ID == talk.Formats {
			session.Format = BuildKey(f.Name)
			break
		}
	}

	for _, c := range event.Categories {
		if c.ID == talk.Categories {
			session.Tags = append(session.Tags, BuildKey(c.Name))
			break
		}
	}

	for _, id := range talk.Speakers {
		for _, s := range event.Speakers {
			if s.UID == id {
				session.Speakers = append(session.Speakers, BuildKey(s.DisplayName))
				break
			}
		}
	}

	return session
}

// ToSiteSpeaker converts a Conference Hall speaker profile into a site speaker
func ToSiteSpeaker(speaker Speaker) SiteSpeaker {
	socials := []Social{}
	if handle := socialHandle(speaker.Twitter); handle != "" {
		socials = append(socials, Social{Icon: "twitter", Link: "https://twitter.com/" + handle})
	}
	if handle := socialHandle(speaker.Github); handle != "" {
		socials = append(socials, Social{Icon: "github", Link: "https://github.com/" + handle})
	}

	return SiteSpeaker{
		Key:         BuildKey(speaker.DisplayName),
		Name:        speaker.DisplayName,
		ID:          speaker.UID,
		Company:     speaker.Company,
		City:        speaker.City,
		PhotoURL:    speaker.PhotoURL,
		Socials:     socials,
		Description: speaker.Bio,
	}
}

// socialHandle extracts an account name from either a bare handle,
// an @handle or a profile URL
func socialHandle(value string) string {
	value = strings.TrimSpace(value)
	if i := strings.LastIndex(strings.TrimSuffix(value, "/"), "/"); i >= 0 {
		value = strings.TrimSuffix(value, "/")[i+1:]
	}
	return strings.TrimPrefix(value, "@")
}

// NewCategory converts an event category into a site category
func NewCategory(c Category) SiteCategory {
	return SiteCategory{Key: BuildKey(c.Name), Name: c.Name, ID: c.ID}
}

// NewFormat converts an event format into a site format
func NewFormat(f Format) SiteFormat {
	return SiteFormat{Key: BuildKey(f.Name), Name: f.Name, ID: f.ID}
}

// NewInfo extracts the published metadata of an event. The id is the
// configured event id rather than the one returned by the API.
func NewInfo(id string, event *Event) Info {
	return Info{
		ID:   id,
		Name: event.Name,
		Address: InfoAddress{
			FormattedAddress: event.Address.FormattedAddress,
			Locality:         event.Address.Locality,
			Country:          event.Address.Country,
			LatLng:           event.Address.LatLng,
		},
		Dates: Dates{
			Start: event.ConferenceDates.Start,
			End:   event.ConferenceDates.End,
		},
	}
}
