package boon

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/osse101/VentureBot_Go/internal/domain"
)

// keyNamespace scopes content keys so they never collide with other SHA1 UUIDs.
var keyNamespace = uuid.MustParse("6f1d2c1e-3b4a-5c6d-8e7f-a0b1c2d3e4f5")

var folder = cases.Fold()

// ContentKey derives the identity of a boon from its content, so edits to
// other lines never shift its purchase counts.
func ContentKey(b domain.Boon) string {
	canonical := strings.Join([]string{
		strings.TrimSpace(b.Name),
		strconv.Itoa(b.Cost),
		strings.TrimSpace(b.Description),
		b.Reward,
		strconv.Itoa(b.Limit),
		string(b.Window),
		NormalizeGroup(b.Group),
		strconv.Itoa(b.GroupLimit),
	}, "\x1f")
	return domain.BoonKeyContentPrefix + uuid.NewSHA1(keyNamespace, []byte(canonical)).String()
}

// PositionKey is the legacy per-index purchase key.
func PositionKey(index int) string {
	return domain.BoonKeyPositionPrefix + strconv.Itoa(index)
}

// NormalizeGroup case-folds and trims a group name.
func NormalizeGroup(name string) string {
	return folder.String(strings.Join(strings.Fields(name), " "))
}

// GroupKey is the purchase key shared by every boon in a group. Empty for no group.
func GroupKey(name string) string {
	norm := NormalizeGroup(name)
	if norm == "" {
		return ""
	}
	return domain.BoonKeyGroupPrefix + norm
}
