package boon

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// Reward references look like "Compendium.pack.Item.id" or "@UUID[Item.abc]{Label}".
var rewardPattern = regexp.MustCompile(`^(?:@UUID\[)?((?:Compendium|Item|Actor|ActiveEffect|Effect)\.[A-Za-z0-9._-]+)\]?(?:\{[^}]*\})?$`)

// Rejected describes a boon line that was dropped.
type Rejected struct {
	Line   int    `json:"line"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

type fieldKind int

const (
	kindNone fieldKind = iota
	kindReward
	kindLimit
	kindWindow
	kindGroup
	kindGroupLimit
)

// Parse reads one boon per non-empty line and silently drops malformed lines.
func Parse(text string) []domain.Boon {
	boons, _ := ParseWithReport(text)
	return boons
}

// ParseWithReport is Parse that also returns the dropped lines.
//
// Line shape: Name | Cost | Description [| Reward] [| Limit] [| Window] [| group=Name] [| grouplimit=N]
// Optional fields are recognized by shape from the right, each kind at most once.
// Anything between the description and the recognized tail belongs to the description.
func ParseWithReport(text string) ([]domain.Boon, []Rejected) {
	var boons []domain.Boon
	var rejected []Rejected

	for i, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		b, reason := parseLine(line)
		if reason != "" {
			rejected = append(rejected, Rejected{Line: i + 1, Text: line, Reason: reason})
			continue
		}
		b.Index = len(boons)
		b.Key = ContentKey(b)
		boons = append(boons, b)
	}
	return boons, rejected
}

func parseLine(line string) (domain.Boon, string) {
	fields := strings.Split(line, FieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 2 {
		return domain.Boon{}, RejectTooFewFields
	}

	b := domain.Boon{
		Name:   fields[0],
		Limit:  DefaultLimit,
		Window: domain.WindowAny,
	}
	if b.Name == "" {
		return domain.Boon{}, RejectMissingName
	}
	if fields[1] == "" {
		return domain.Boon{}, RejectMissingCost
	}
	cost, err := strconv.Atoi(fields[1])
	if err != nil || cost < 0 {
		return domain.Boon{}, RejectInvalidCost
	}
	b.Cost = cost

	if len(fields) < 3 {
		return b, ""
	}

	seen := map[fieldKind]bool{}
	end := len(fields)
	for end > 3 {
		kind := classify(&b, fields[end-1], seen)
		if kind == kindNone {
			break
		}
		seen[kind] = true
		end--
	}
	b.Description = strings.Join(fields[2:end], DescriptionJoiner)
	return b, ""
}

// classify recognizes field by shape and stores it on b. It returns kindNone
// when the field is unrecognized or its kind was already consumed.
func classify(b *domain.Boon, field string, seen map[fieldKind]bool) fieldKind {
	if v, ok := cutPrefixFold(field, GroupLimitPrefix); ok {
		n, err := strconv.Atoi(v)
		if seen[kindGroupLimit] || err != nil || n <= 0 {
			return kindNone
		}
		b.GroupLimit = n
		return kindGroupLimit
	}
	if v, ok := cutPrefixFold(field, GroupPrefix); ok {
		if seen[kindGroup] || v == "" {
			return kindNone
		}
		b.Group = v
		return kindGroup
	}
	if w, ok := ParseWindow(field); ok {
		if seen[kindWindow] {
			return kindNone
		}
		b.Window = w
		return kindWindow
	}
	if n, ok := parseLimit(strings.ToLower(field)); ok {
		if seen[kindLimit] {
			return kindNone
		}
		b.Limit = n
		return kindLimit
	}
	if m := rewardPattern.FindStringSubmatch(field); m != nil {
		if seen[kindReward] {
			return kindNone
		}
		b.Reward = m[1]
		return kindReward
	}
	return kindNone
}

// cutPrefixFold matches prefix case-insensitively, allowing spaces around '=',
// and returns the trimmed remainder.
func cutPrefixFold(field, prefix string) (string, bool) {
	name := strings.TrimSuffix(prefix, "=")
	if len(field) < len(name) || !strings.EqualFold(field[:len(name)], name) {
		return "", false
	}
	rest := strings.TrimLeft(field[len(name):], " \t")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

func parseLimit(lower string) (int, bool) {
	if lower == LimitUnlimited {
		return 0, true
	}
	n, err := strconv.Atoi(lower)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ParseWindow recognizes the purchase-window vocabulary. Case, spaces,
// hyphens and underscores are ignored.
func ParseWindow(field string) (domain.PurchaseWindow, bool) {
	norm := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(field))
	switch norm {
	case "any", "anyturn":
		return domain.WindowAny, true
	case "loss", "lossoreven", "lossoreventurn", "downturn":
		return domain.WindowLossOrEven, true
	case "profit", "profitoreven", "profitoreventurn", "upturn":
		return domain.WindowProfitOrEven, true
	default:
		return "", false
	}
}
