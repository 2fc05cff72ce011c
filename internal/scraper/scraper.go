package scraper

import (
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/smazzone/lumiton-agenda/internal/event"
	"github.com/smazzone/lumiton-agenda/internal/logger"
)

const (
	AgendaURL = "https://lumiton.ar/agenda-presencial/"
	SiteBase  = "https://lumiton.ar"

	// A browser-like User-Agent keeps the site's bot mitigation from
	// serving challenge pages.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	listingTimeout = 30 * time.Second
	detailTimeout  = 10 * time.Second
	maxRetries     = 3
)

var (
	timePattern = regexp.MustCompile(`\d{1,2}:\d{2}`)
	datePattern = regexp.MustCompile(`\d{1,2}/\d{1,2}`)
)

// fallbackClassKeywords mark event-like containers on older layouts of the
// agenda page where no article elements exist.
var fallbackClassKeywords = []string{"event", "film", "agenda", "post"}

// Scraper fetches and parses the Lumiton agenda page.
type Scraper struct {
	listing *http.Client
	detail  *http.Client
	url     string
	base    string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		listing: &http.Client{Timeout: listingTimeout},
		detail:  &http.Client{Timeout: detailTimeout},
		url:     AgendaURL,
		base:    SiteBase,
	}
}

// FetchEvents fetches the agenda page and extracts every valid screening.
// Failure to fetch the listing page is fatal to the run; everything below
// that is tolerated per fragment.
func (s *Scraper) FetchEvents() ([]event.Event, error) {
	html, err := s.fetchListing()
	if err != nil {
		return nil, err
	}
	return s.parseEvents(strings.NewReader(html))
}

// fetchListing fetches the agenda page, retrying transient failures with
// exponential backoff. Bot-mitigation hiccups on this site usually clear
// within a retry or two.
func (s *Scraper) fetchListing() (string, error) {
	var body string
	op := func() error {
		b, err := s.get(s.listing, s.url)
		if err != nil {
			logger.Warn("agenda page fetch attempt failed", logger.Fields{
				"url":   s.url,
				"error": err.Error(),
			})
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	if err := backoff.Retry(op, policy); err != nil {
		return "", fmt.Errorf("fetching agenda page: %w", err)
	}
	return body, nil
}

// get performs a single GET request and returns the response body.
func (s *Scraper) get(client *http.Client, url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	return string(data), nil
}

// parseEvents extracts screenings from listing-page HTML.
func (s *Scraper) parseEvents(r io.Reader) ([]event.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	fragments := doc.Find("article")
	if fragments.Length() == 0 {
		fragments = doc.Find("div").FilterFunction(fragmentClassMatch)
	}

	events := make([]event.Event, 0, fragments.Length())
	fragments.Each(func(i int, sel *goquery.Selection) {
		evt, ok := s.extractEvent(sel)
		if !ok {
			logger.Debug("fragment missing title or venue, skipped", logger.Fields{
				"index": i,
			})
			return
		}
		events = append(events, evt)
	})

	return events, nil
}

// fragmentClassMatch reports whether an element's class attribute contains
// one of the event-container keywords.
func fragmentClassMatch(i int, sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	class = strings.ToLower(class)
	for _, kw := range fallbackClassKeywords {
		if strings.Contains(class, kw) {
			return true
		}
	}
	return false
}

// extractEvent pulls the screening fields out of one fragment. Each
// sub-extraction is independent: a missing field never prevents the others
// from being read. The fragment yields an event only when both title and
// venue were found.
func (s *Scraper) extractEvent(sel *goquery.Selection) (event.Event, bool) {
	var evt event.Event

	evt.Title = strings.TrimSpace(sel.Find("h3").First().Text())

	// Machine-readable date attribute is preferred over the human-readable
	// date block.
	if attr, ok := sel.Attr("data-date"); ok {
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(attr)); err == nil {
			evt.Date = fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
		} else {
			logger.Warn("unparseable data-date attribute", logger.Fields{
				"value": attr,
			})
		}
	}

	if fecha := strings.TrimSpace(sel.Find(".g-event-fecha").First().Text()); fecha != "" {
		if evt.Date == "" {
			evt.Date = datePattern.FindString(fecha)
		}
		evt.Time = timePattern.FindString(fecha)
	}

	if raw := strings.TrimSpace(sel.Find("span.font-semibold").First().Text()); raw != "" {
		evt.Venue = event.NormalizeVenue(raw)
	}

	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		evt.URL = strings.TrimSpace(href)
	}

	evt.Description = strings.TrimSpace(sel.Find("p.line-clamp-3").First().Text())

	if evt.Time == "" && evt.URL != "" {
		evt.Time = s.fetchDetailTime(evt.URL)
	}

	return evt, evt.Valid()
}

// fetchDetailTime fetches a screening's detail page and pulls the time out
// of its hour element. Any failure is tolerated: the listing entry simply
// keeps an empty time.
func (s *Scraper) fetchDetailTime(detailURL string) string {
	if strings.HasPrefix(detailURL, "/") {
		detailURL = s.base + detailURL
	}

	logger.Debug("fetching time from detail page", logger.Fields{
		"url": detailURL,
	})

	body, err := s.get(s.detail, detailURL)
	if err != nil {
		logger.Warn("could not fetch detail page", logger.Fields{
			"url":   detailURL,
			"error": err.Error(),
		})
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		logger.Warn("could not parse detail page", logger.Fields{
			"url":   detailURL,
			"error": err.Error(),
		})
		return ""
	}

	hora := strings.TrimSpace(doc.Find(".g-event-hora").First().Text())
	return timePattern.FindString(hora)
}
