package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// detailURLPrefix joins the relative links found on listing pages.
const detailURLPrefix = "http://books.toscrape.com/catalogue/"

var stockPattern = regexp.MustCompile(`\d+`)

// Listing is the data visible on a catalogue page for one book.
type Listing struct {
	Title  string
	Price  float64
	Rating string
	Link   string
}

// Detail is the extra data only present on a book's own page.
type Detail struct {
	Category string
	Stock    int
}

// ParseListings extracts the book listings from a catalogue page. Relative
// detail links are joined onto baseURL.
func ParseListings(html, baseURL string) ([]Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing listing page: %w", err)
	}

	var listings []Listing

	doc.Find(".product_pod").Each(func(_ int, pod *goquery.Selection) {
		anchor := pod.Find("h3 a")
		title, _ := anchor.Attr("title")

		listing := Listing{
			Title:  title,
			Price:  parsePrice(pod.Find(".price_color").Text()),
			Rating: parseRating(pod.Find("p.star-rating")),
		}

		if href, ok := anchor.Attr("href"); ok {
			listing.Link = baseURL + strings.TrimPrefix(href, "../")
		}

		listings = append(listings, listing)
	})

	return listings, nil
}

// ParseDetail extracts category and stock from a book's detail page.
func ParseDetail(html string) (Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Detail{}, fmt.Errorf("parsing detail page: %w", err)
	}

	detail := Detail{Category: "Unknown"}

	// The category sits third in the breadcrumb: Home / Books / <category>.
	breadcrumb := doc.Find("ul.breadcrumb li a")
	if breadcrumb.Length() >= 3 {
		detail.Category = strings.TrimSpace(breadcrumb.Eq(2).Text())
	}

	stockText := strings.TrimSpace(doc.Find(".instock.availability").Text())
	if match := stockPattern.FindString(stockText); match != "" {
		if stock, err := strconv.Atoi(match); err == nil {
			detail.Stock = stock
		}
	}

	return detail, nil
}

// parsePrice strips the currency sign and parses the amount, 0 on failure.
func parsePrice(text string) float64 {
	cleaned := strings.TrimFunc(strings.TrimSpace(text), func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	})

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// parseRating reads the rating word from the star-rating CSS class.
func parseRating(sel *goquery.Selection) string {
	class, ok := sel.Attr("class")
	if !ok {
		return ""
	}

	for _, word := range strings.Fields(class) {
		if word != "star-rating" {
			return word
		}
	}
	return ""
}
