package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kintraj/internal/trajectory"
)

var axisLabels = map[trajectory.Quantity][3]string{
	trajectory.Position:            {"x [m]", "y [m]", "z [m]"},
	trajectory.Velocity:            {"vx [m/s]", "vy [m/s]", "vz [m/s]"},
	trajectory.Acceleration:        {"ax [m/s^2]", "ay [m/s^2]", "az [m/s^2]"},
	trajectory.Orientation:         {"roll [rad]", "pitch [rad]", "yaw [rad]"},
	trajectory.AngularVelocity:     {"wx [rad/s]", "wy [rad/s]", "wz [rad/s]"},
	trajectory.AngularAcceleration: {"alpha_x [rad/s^2]", "alpha_y [rad/s^2]", "alpha_z [rad/s^2]"},
}

// PlotComponents renders one chart per axis of the quantity. Reading an
// unset quantity may derive it through the cascade first.
func PlotComponents(tr *trajectory.Trajectory, q trajectory.Quantity, width, height int) (string, error) {
	data, err := tr.Get(q)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("viz: no samples to plot for %s", q)
	}

	labels := axisLabels[q]
	var b strings.Builder
	for k := 0; k < 3; k++ {
		series := make([]float64, len(data))
		for i := range data {
			series[i] = data[i][k]
		}
		graph := asciigraph.Plot(series,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(fmt.Sprintf("%s: %s", q, labels[k])),
		)
		b.WriteString(graph)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
