package mock

import "github.com/fwojciec/helpcenter"

var _ helpcenter.PageScanner = (*PageScanner)(nil)

// PageScanner is a mock implementation of helpcenter.PageScanner.
type PageScanner struct {
	ScanLinksFn    func(html string) ([]helpcenter.ScannedLink, error)
	ScanCardsFn    func(html string) ([]helpcenter.Record, error)
	ScanHeadingsFn func(html string) ([]helpcenter.Heading, error)
}

func (s *PageScanner) ScanLinks(html string) ([]helpcenter.ScannedLink, error) {
	return s.ScanLinksFn(html)
}

func (s *PageScanner) ScanCards(html string) ([]helpcenter.Record, error) {
	return s.ScanCardsFn(html)
}

func (s *PageScanner) ScanHeadings(html string) ([]helpcenter.Heading, error) {
	return s.ScanHeadingsFn(html)
}
