package apps

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/deskfolio/deskfolio/internal/theme"
)

const cpuHistoryLen = 30

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Stats is the system panel. Unlike the rest of the desktop it shows
// real numbers: CPU, RAM and uptime of the machine actually running
// the simulation. Sampling is driven externally on a throttled tick so
// rendering never blocks on gopsutil.
type Stats struct {
	cpuHistory []float64
	ramPercent float64
	ramUsed    uint64
	ramTotal   uint64
	hostname   string
	platform   string
	uptime     time.Duration
	sampled    bool
}

// NewStats creates an empty stats panel; call Sample to populate it.
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) ID() string    { return StatsWindow }
func (s *Stats) Title() string { return "stats" }
func (s *Stats) Icon() string  { return "↯" }

func (s *Stats) HandleKey(string) bool { return false }

// Sample takes one reading of CPU, memory and host info. Failures
// leave the previous reading in place; a stats panel is not worth an
// error path.
func (s *Stats) Sample() {
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		s.cpuHistory = append(s.cpuHistory, percents[0])
		if len(s.cpuHistory) > cpuHistoryLen {
			s.cpuHistory = s.cpuHistory[len(s.cpuHistory)-cpuHistoryLen:]
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.ramPercent = vm.UsedPercent
		s.ramUsed = vm.Used
		s.ramTotal = vm.Total
	}
	if info, err := host.Info(); err == nil {
		s.hostname = info.Hostname
		s.platform = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
		s.uptime = time.Duration(info.Uptime) * time.Second
	}
	s.sampled = true
}

// CPUSparkline renders the recent CPU history as a fixed-width bar
// graph, padded on the left until enough samples exist.
func (s *Stats) CPUSparkline(width int) string {
	if width <= 0 {
		return ""
	}
	history := s.cpuHistory
	if len(history) > width {
		history = history[len(history)-width:]
	}

	var sb strings.Builder
	for range width - len(history) {
		sb.WriteRune(' ')
	}
	for _, usage := range history {
		idx := int(usage / 100 * float64(len(sparkRunes)))
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}

// CurrentCPU returns the latest CPU reading.
func (s *Stats) CurrentCPU() float64 {
	if len(s.cpuHistory) == 0 {
		return 0
	}
	return s.cpuHistory[len(s.cpuHistory)-1]
}

// RAMPercent returns the latest memory usage reading.
func (s *Stats) RAMPercent() float64 {
	return s.ramPercent
}

func gigabytes(b uint64) float64 {
	return float64(b) / (1 << 30)
}

func formatUptime(d time.Duration) string {
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// View renders the panel.
func (s *Stats) View(width, height int) string {
	label := lipgloss.NewStyle().Foreground(theme.Muted())
	value := lipgloss.NewStyle().Foreground(theme.Foreground())
	accent := lipgloss.NewStyle().Foreground(theme.Accent())

	if !s.sampled {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			label.Render("gathering numbers…"))
	}

	graphWidth := min(cpuHistoryLen, width-12)
	if graphWidth < 1 {
		graphWidth = 1
	}

	lines := []string{
		label.Render("host     ") + value.Render(s.hostname),
		label.Render("platform ") + value.Render(s.platform),
		label.Render("uptime   ") + value.Render(formatUptime(s.uptime)),
		"",
		label.Render("cpu      ") + accent.Render(s.CPUSparkline(graphWidth)) +
			value.Render(fmt.Sprintf(" %5.1f%%", s.CurrentCPU())),
		label.Render("ram      ") + value.Render(fmt.Sprintf("%.1f / %.1f GiB (%.0f%%)",
			gigabytes(s.ramUsed), gigabytes(s.ramTotal), s.ramPercent)),
	}

	body := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(clampLines(lines, height), "\n"))
	return body
}
