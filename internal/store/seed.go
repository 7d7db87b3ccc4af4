package store

import "github.com/MKhiriev/go-book-reviews/models"

// SeedBooks returns the fixed catalog the service starts with. The id space
// is never extended or compacted at runtime; only the review maps mutate.
func SeedBooks() map[int]models.Book {
	return map[int]models.Book{
		1: {
			ISBN:   "978-0-7432-7356-5",
			Author: "Chinua Achebe",
			Title:  "Things Fall Apart",
			Reviews: map[string]string{
				"user1": "Great book about African culture and colonialism",
				"user2": "A masterpiece of African literature",
			},
		},
		2: {
			ISBN:   "978-0-452-28423-4",
			Author: "Hans Christian Andersen",
			Title:  "Fairy tales",
			Reviews: map[string]string{
				"user1": "Classic fairy tales that never get old",
			},
		},
		3: {
			ISBN:   "978-0-14-143951-8",
			Author: "Dante Alighieri",
			Title:  "The Divine Comedy",
			Reviews: map[string]string{
				"user2": "Epic journey through hell, purgatory, and paradise",
			},
		},
		4: {
			ISBN:    "978-0-7432-7357-2",
			Author:  "Unknown",
			Title:   "The Epic Of Gilgamesh",
			Reviews: map[string]string{},
		},
		5: {
			ISBN:   "978-0-393-97781-1",
			Author: "Unknown",
			Title:  "The Book Of Job",
			Reviews: map[string]string{
				"user1": "Profound exploration of suffering and faith",
			},
		},
		6: {
			ISBN:    "978-0-14-044919-1",
			Author:  "Unknown",
			Title:   "One Thousand and One Nights",
			Reviews: map[string]string{},
		},
		7: {
			ISBN:    "978-0-14-044914-6",
			Author:  "Unknown",
			Title:   "Njál's Saga",
			Reviews: map[string]string{},
		},
		8: {
			ISBN:   "978-0-14-044793-7",
			Author: "Jane Austen",
			Title:  "Pride and Prejudice",
			Reviews: map[string]string{
				"user2": "Witty and romantic, a timeless classic",
			},
		},
		9: {
			ISBN:    "978-0-14-043516-3",
			Author:  "Honoré de Balzac",
			Title:   "Le Père Goriot",
			Reviews: map[string]string{},
		},
		10: {
			ISBN:    "978-0-553-21311-7",
			Author:  "Samuel Beckett",
			Title:   "Molloy, Malone Dies, The Unnamable, the trilogy",
			Reviews: map[string]string{},
		},
	}
}
