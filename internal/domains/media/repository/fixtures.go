package repository

import (
	"time"

	"photoshare-backend/internal/domains/media"
)

// Demo fixtures cho memory backend. Author ids khớp với allow-list
// fixture bên identity.

func DemoMedias() []media.Media {
	return []media.Media{
		{
			ID:           "1",
			Title:        "Weekend Hiking Trip",
			Description:  strPtr("Amazing views from our trip to the mountains last weekend!"),
			URL:          "https://player.vimeo.com/external/368763065.sd.mp4?s=01ad1ba21dc72c927a51010d7230cff2936e68e9&profile_id=164&oauth2_token_id=57447761",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=1000&auto=format&fit=crop"),
			Type:         media.TypeVideo,
			UserID:       "2",
			CreatedAt:    mustTime("2023-11-05T14:32:00Z"),
			Tags:         []string{"nature", "hiking", "friends"},
			Likes:        4,
		},
		{
			ID:          "2",
			Title:       "Birthday Celebration",
			Description: strPtr("Thanks everyone for making my birthday special!"),
			URL:         "https://images.unsplash.com/photo-1558439744-2a8f2ad4d50c?q=80&w=1000&auto=format&fit=crop",
			Type:        media.TypeImage,
			UserID:      "1",
			CreatedAt:   mustTime("2023-10-15T20:45:00Z"),
			Tags:        []string{"birthday", "celebration", "party"},
			Likes:       5,
		},
		{
			ID:           "3",
			Title:        "Campus Concert",
			Description:  strPtr("Live footage from the amazing concert at our campus!"),
			URL:          "https://player.vimeo.com/external/342571552.hd.mp4?s=6aa6f164de3812abadff3dde86d19f7a074a8a66&profile_id=175&oauth2_token_id=57447761",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1501386761578-eac5c94b800a?q=80&w=1000&auto=format&fit=crop"),
			Type:         media.TypeVideo,
			UserID:       "3",
			CreatedAt:    mustTime("2023-12-02T22:10:00Z"),
			Tags:         []string{"music", "concert", "campus"},
			Likes:        3,
		},
		{
			ID:          "4",
			Title:       "Spring Break Photos",
			Description: strPtr("Collection of our best moments from spring break"),
			URL:         "https://images.unsplash.com/photo-1473496169904-658ba7c44d8a?q=80&w=1000&auto=format&fit=crop",
			Type:        media.TypeImage,
			UserID:      "5",
			CreatedAt:   mustTime("2023-09-20T16:25:00Z"),
			Tags:        []string{"spring", "beach", "vacation"},
			Likes:       4,
		},
		{
			ID:           "5",
			Title:        "Study Session Timelapse",
			Description:  strPtr("How we survived finals week"),
			URL:          "https://player.vimeo.com/external/434045526.hd.mp4?s=81d8946359cebdbe292e0a7cd2c2ed42dd5ebf57&profile_id=174&oauth2_token_id=57447761",
			ThumbnailURL: strPtr("https://images.unsplash.com/photo-1434030216411-0b793f4b4173?q=80&w=1000&auto=format&fit=crop"),
			Type:         media.TypeVideo,
			UserID:       "4",
			CreatedAt:    mustTime("2023-12-10T09:15:00Z"),
			Tags:         []string{"study", "finals", "timelapse"},
			Likes:        2,
		},
	}
}

func DemoComments() map[string][]media.Comment {
	return map[string][]media.Comment{
		"1": {
			{
				ID:        "c1",
				Content:   "That view is incredible! Where exactly was this?",
				UserID:    "3",
				MediaID:   "1",
				CreatedAt: mustTime("2023-11-05T16:45:00Z"),
			},
			{
				ID:        "c2",
				Content:   "We should plan another trip there soon!",
				UserID:    "5",
				MediaID:   "1",
				CreatedAt: mustTime("2023-11-06T10:12:00Z"),
			},
		},
		"2": {
			{
				ID:        "c3",
				Content:   "Happy birthday! The cake looks amazing.",
				UserID:    "4",
				MediaID:   "2",
				CreatedAt: mustTime("2023-10-15T21:30:00Z"),
			},
		},
		"3": {
			{
				ID:        "c4",
				Content:   "The sound quality is fantastic! Which band was this?",
				UserID:    "1",
				MediaID:   "3",
				CreatedAt: mustTime("2023-12-03T09:20:00Z"),
			},
			{
				ID:        "c5",
				Content:   "I'm so sad I missed this concert! Looks awesome.",
				UserID:    "2",
				MediaID:   "3",
				CreatedAt: mustTime("2023-12-03T11:45:00Z"),
			},
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
