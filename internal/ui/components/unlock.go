package components

import (
	"strings"

	"github.com/abhisek/lymphiz/internal/achievements"
)

// UnlockBanner announces freshly unlocked achievements. It returns "" when
// ids is empty.
func UnlockBanner(ids []achievements.ID, cw int) string {
	if len(ids) == 0 {
		return ""
	}
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, id.Icon()+"  Conquista desbloqueada: "+id.DisplayName())
	}
	return Banner(strings.Join(lines, "\n"), cw)
}
