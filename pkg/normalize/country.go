package normalize

import (
	"fmt"
	"sort"
	"strings"

	"worldinfo/pkg/domain"
)

// flagCDN is the fallback flag image template, keyed by the lowercase
// ISO-3166 alpha-2 code.
const flagCDN = "https://flagcdn.com/w320/%s.png"

// CountrylayerCountry mirrors one entry of countrylayer's v2 name lookup
// (provider A): languages as a list of objects, currencies as a list.
type CountrylayerCountry struct {
	Name      string `json:"name"`
	Capital   string `json:"capital"`
	Languages []struct {
		Name string `json:"name"`
	} `json:"languages"`
	Currencies []struct {
		Code string `json:"code"`
	} `json:"currencies"`
}

// RESTCountry mirrors one entry of restcountries v3.1 (provider B):
// languages and currencies as maps, flag image URLs supplied directly.
type RESTCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string          `json:"capital"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
}

// CountryPayload is the tagged union of the two provider shapes. At most one
// variant is set; neither set means the upstream had no record for the query.
type CountryPayload struct {
	Countrylayer *CountrylayerCountry
	RESTCountry  *RESTCountry
}

// Country collapses either provider shape into the canonical CountryInfo.
// query echoes the requested country name and is the fallback when the
// upstream omits a name; code, when supplied by the caller, feeds the CDN
// flag fallback. A no-match resolves to NA sentinels, not an error.
func Country(payload CountryPayload, query, code string) domain.CountryInfo {
	info := domain.CountryInfo{
		Name:         query,
		Capital:      domain.NA,
		Languages:    domain.NA,
		CurrencyCode: domain.NA,
	}
	if code != "" {
		info.FlagURL = fmt.Sprintf(flagCDN, strings.ToLower(code))
	}

	switch {
	case payload.Countrylayer != nil:
		raw := payload.Countrylayer
		if raw.Name != "" {
			info.Name = raw.Name
		}
		if raw.Capital != "" {
			info.Capital = raw.Capital
		}
		names := make([]string, 0, len(raw.Languages))
		for _, l := range raw.Languages {
			if l.Name != "" {
				names = append(names, l.Name)
			}
		}
		if len(names) > 0 {
			info.Languages = strings.Join(names, ", ")
		}
		if len(raw.Currencies) > 0 && raw.Currencies[0].Code != "" {
			info.CurrencyCode = raw.Currencies[0].Code
		}

	case payload.RESTCountry != nil:
		raw := payload.RESTCountry
		if raw.Name.Common != "" {
			info.Name = raw.Name.Common
		}
		if len(raw.Capital) > 0 && raw.Capital[0] != "" {
			info.Capital = raw.Capital[0]
		}
		if len(raw.Languages) > 0 {
			names := make([]string, 0, len(raw.Languages))
			for _, name := range raw.Languages {
				names = append(names, name)
			}
			sort.Strings(names)
			info.Languages = strings.Join(names, ", ")
		}
		if len(raw.Currencies) > 0 {
			codes := make([]string, 0, len(raw.Currencies))
			for c := range raw.Currencies {
				codes = append(codes, c)
			}
			sort.Strings(codes)
			info.CurrencyCode = codes[0]
		}
		// Prefer the upstream flag image over the CDN fallback.
		if raw.Flags.PNG != "" {
			info.FlagURL = raw.Flags.PNG
		} else if raw.Flags.SVG != "" {
			info.FlagURL = raw.Flags.SVG
		}
	}

	return info
}
