package scraper

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the records as CSV with a header row.
func WriteCSV(w io.Writer, books []Book) error {
	writer := csv.NewWriter(w)

	header := []string{"title", "price", "stock", "rating", "link", "category"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, book := range books {
		record := []string{
			book.Title,
			strconv.FormatFloat(book.Price, 'f', 2, 64),
			strconv.Itoa(book.Stock),
			book.Rating,
			book.Link,
			book.Category,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, books []Book) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(books); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
