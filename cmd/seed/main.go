// Seeds the catalog with sample authors, books and reviews. Runs the
// data through the service layer so all validation and invariants apply
// the same way they do for API traffic.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	authormodel "bookstore-catalog/internal/domains/author/model"
	bookmodel "bookstore-catalog/internal/domains/book/model"
	metadatamodel "bookstore-catalog/internal/domains/metadata/model"
	"bookstore-catalog/pkg/container"
	"bookstore-catalog/pkg/logger"
)

type authorSeed struct {
	name      string
	biography string
	bornDate  string
}

type bookSeed struct {
	title         string
	description   string
	publishedDate string
}

type reviewSeed struct {
	bookTitle string
	username  string
	rating    int
	comment   string
}

var authorsData = []authorSeed{
	{"Alice Walker", "American novelist, short story writer, poet, and social activist.", "1944-02-09"},
	{"Gabriel García Márquez", "Colombian novelist, short-story writer, screenwriter and journalist.", "1927-03-06"},
	{"Haruki Murakami", "Japanese writer known for his surrealistic fiction.", "1949-01-12"},
	{"Chimamanda Ngozi Adichie", "Nigerian writer and author of novels, short stories, and nonfiction.", "1977-09-15"},
	{"George Orwell", "English novelist, essayist, journalist and critic.", "1903-06-25"},
	{"Margaret Atwood", "Canadian poet, novelist, literary critic, and essayist.", "1939-11-18"},
	{"J.K. Rowling", "British author, best known for the Harry Potter series.", "1965-07-31"},
	{"Toni Morrison", "American novelist, essayist, editor, and professor.", "1931-02-18"},
	{"Kazuo Ishiguro", "British novelist, screenwriter, and short-story writer.", "1954-11-08"},
	{"Isabel Allende", "Chilean writer, known for novels such as 'The House of the Spirits'.", "1942-08-02"},
}

var booksData = []bookSeed{
	{"The Color Purple", "A story of African-American women in the early 20th century.", "1982-01-01"},
	{"One Hundred Years of Solitude", "A multi-generational story of the Buendía family.", "1967-05-30"},
	{"Kafka on the Shore", "A surreal coming-of-age novel.", "2002-09-12"},
	{"Half of a Yellow Sun", "A novel set during the Nigerian Civil War.", "2006-09-12"},
	{"1984", "A dystopian social science fiction novel.", "1949-06-08"},
	{"The Handmaid's Tale", "A dystopian novel set in a totalitarian society.", "1985-08-17"},
	{"Harry Potter and the Sorcerer's Stone", "The first book in the Harry Potter series.", "1997-06-26"},
	{"Beloved", "A novel about the legacy of slavery.", "1987-09-16"},
	{"Never Let Me Go", "A dystopian science fiction novel.", "2005-03-03"},
	{"The House of the Spirits", "A family saga in post-colonial Chile.", "1982-01-01"},
	{"Possessing the Secret of Joy", "A novel about female genital mutilation.", "1992-01-01"},
	{"Love in the Time of Cholera", "A love story spanning decades.", "1985-01-01"},
	{"Norwegian Wood", "A nostalgic story of loss and sexuality.", "1987-09-04"},
	{"Americanah", "A story of love and race centered on Nigeria and America.", "2013-05-14"},
	{"Animal Farm", "A satirical allegorical novella.", "1945-08-17"},
	{"Oryx and Crake", "A speculative fiction novel.", "2003-05-06"},
	{"Harry Potter and the Chamber of Secrets", "The second book in the Harry Potter series.", "1998-07-02"},
	{"Song of Solomon", "A novel about African-American culture and identity.", "1977-09-16"},
	{"The Remains of the Day", "A story of an English butler's reflections.", "1989-05-17"},
	{"Of Love and Shadows", "A novel set during the military dictatorship in Chile.", "1984-01-01"},
}

var reviewsData = []reviewSeed{
	{"1984", "bookworm42", 5, "Still the sharpest warning ever written."},
	{"1984", "quietreader", 4, "Bleak but unforgettable."},
	{"Kafka on the Shore", "bookworm42", 5, "Murakami at his strangest and best."},
	{"Beloved", "litmajor", 5, "Devastating and essential."},
	{"The Handmaid's Tale", "quietreader", 4, "Reads differently every decade."},
	{"Never Let Me Go", "litmajor", 4, "Quiet horror done perfectly."},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment variables")
	}
	logger.Init("development")

	c, err := container.NewContainer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize container")
	}
	defer c.Cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed(ctx, c); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}
	log.Info().Msg("seed data inserted successfully")
}

func seed(ctx context.Context, c *container.Container) error {
	authors := make([]string, 0, len(authorsData))
	for _, a := range authorsData {
		created, err := c.AuthorService.CreateAuthor(ctx, authormodel.CreateAuthorInput{
			Name:      a.name,
			Biography: ptr(a.biography),
			BornDate:  ptr(a.bornDate),
		})
		if err != nil {
			return err
		}
		authors = append(authors, created.ID.String())
	}

	// Two consecutive books go to each author.
	bookIDs := map[string]string{}
	authorIndex := 0
	for i, b := range booksData {
		created, err := c.BookService.CreateBook(ctx, bookmodel.CreateBookInput{
			Title:         b.title,
			AuthorID:      authors[authorIndex],
			Description:   ptr(b.description),
			PublishedDate: ptr(b.publishedDate),
		})
		if err != nil {
			return err
		}
		bookIDs[b.title] = created.ID.String()
		if (i+1)%2 == 0 {
			authorIndex++
		}
	}

	for _, r := range reviewsData {
		if _, err := c.MetadataService.AddReview(ctx, metadatamodel.ReviewInput{
			BookID:   bookIDs[r.bookTitle],
			Username: r.username,
			Rating:   r.rating,
			Comment:  ptr(r.comment),
		}); err != nil {
			return err
		}
	}

	return nil
}

func ptr(s string) *string { return &s }
