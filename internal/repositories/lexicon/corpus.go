package lexicon

import "github.com/Mr-Jen/lexifine-server/internal/models"

// Corpus returns the embedded default corpus of obscure terms. Kept small
// on purpose; production deployments seed a larger corpus into Redis.
func Corpus() []*models.Entry {
	return []*models.Entry{
		{Term: "petrichor", Definition: "The earthy smell produced when rain falls on dry soil."},
		{Term: "borborygmus", Definition: "A rumbling noise made by fluid and gas moving in the intestines."},
		{Term: "zugzwang", Definition: "A situation in which any possible move worsens one's position."},
		{Term: "sprezzatura", Definition: "Studied carelessness; making the difficult look effortless."},
		{Term: "defenestration", Definition: "The act of throwing someone or something out of a window."},
		{Term: "ultracrepidarian", Definition: "A person who gives opinions beyond their knowledge."},
		{Term: "widdershins", Definition: "In a direction contrary to the sun's course; counterclockwise."},
		{Term: "apricity", Definition: "The warmth of the sun in winter."},
		{Term: "snollygoster", Definition: "A shrewd, unprincipled person, especially a politician."},
		{Term: "mumpsimus", Definition: "A habit stubbornly adhered to although shown to be unreasonable."},
		{Term: "pogonotrophy", Definition: "The cultivation or growing of a beard."},
		{Term: "hireath", Definition: "A homesickness for a home one cannot return to, or that never was."},
		{Term: "callipygian", Definition: "Having well-shaped buttocks."},
		{Term: "quockerwodger", Definition: "A wooden puppet; a person whose actions are controlled by another."},
		{Term: "absquatulate", Definition: "To leave abruptly without saying goodbye."},
		{Term: "nudiustertian", Definition: "Relating to the day before yesterday."},
		{Term: "tittynope", Definition: "A small quantity of something left over."},
		{Term: "gongoozler", Definition: "A person who enjoys watching activity on canals."},
		{Term: "sialoquent", Definition: "Spraying saliva when speaking."},
		{Term: "limerence", Definition: "The involuntary state of being infatuated with another person."},
	}
}
