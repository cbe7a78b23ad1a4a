package trajio

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/kintraj/internal/trajectory"
)

func sampleTrajectory(diff bool) *trajectory.Trajectory {
	times := []float64{0, 0.5, 1.0}
	pos := trajectory.Series{{0, 0, 0}, {1, 0.5, 0}, {3, 1, 0}}
	orient := trajectory.Series{{0, 0, 0}, {0, 0, 0.1}, {0, 0, 0.2}}
	return trajectory.New(times, trajectory.Samples{Position: pos, Orientation: orient}, diff)
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traj.csv")
	orig := sampleTrajectory(false)

	if err := WriteCSV(path, orig); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadCSV(path, true)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if got.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", got.Len())
	}
	if !got.DifferentiateOnDemand() {
		t.Error("expected on-demand flag from reader argument")
	}

	origP, _ := orig.Position()
	gotP, err := got.Position()
	if err != nil {
		t.Fatalf("position failed: %v", err)
	}
	for i := range origP {
		for k := 0; k < 3; k++ {
			if math.Abs(origP[i][k]-gotP[i][k]) > 1e-6 {
				t.Errorf("position sample %d axis %d: expected %v, got %v", i, k, origP[i][k], gotP[i][k])
			}
		}
	}

	// Quantities absent from the file stay unset until derived.
	if got.Has(trajectory.Velocity) {
		t.Error("velocity should not be present in the file")
	}
	if _, err := got.Velocity(); err != nil {
		t.Errorf("velocity should be derivable after load: %v", err)
	}
}

func TestCSVHeaderSelectsQuantities(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	content := "time,px,py,pz,wx,wy\n0,1,2,3,9,9\n1,4,5,6,9,9\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := ReadCSV(path, false)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !tr.Has(trajectory.Position) {
		t.Error("expected position from px/py/pz columns")
	}
	// wz is missing, so the angular velocity group is incomplete.
	if tr.Has(trajectory.AngularVelocity) {
		t.Error("incomplete column group must load as unset")
	}
}

func TestCSVMissingTimeColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("px,py,pz\n1,2,3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadCSV(path, false); err == nil {
		t.Error("expected error for missing time column")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traj.json")
	orig := sampleTrajectory(false)

	if err := WriteJSON(path, orig); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\"velocity\"") {
		t.Error("absent quantities must be omitted from the document")
	}

	got, err := ReadJSON(path, true)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", got.Len())
	}

	origR, _ := orig.Orientation()
	gotR, err := got.Orientation()
	if err != nil {
		t.Fatalf("orientation failed: %v", err)
	}
	for i := range origR {
		if origR[i] != gotR[i] {
			t.Errorf("orientation sample %d: expected %v, got %v", i, origR[i], gotR[i])
		}
	}
	if got.Has(trajectory.Acceleration) {
		t.Error("acceleration should not be present in the file")
	}
}

func TestEncodeCSVDerivedQuantities(t *testing.T) {
	tr := sampleTrajectory(true)
	if _, err := tr.Velocity(); err != nil {
		t.Fatalf("velocity failed: %v", err)
	}

	var b strings.Builder
	if err := EncodeCSV(&b, tr); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	header := strings.SplitN(b.String(), "\n", 2)[0]
	if !strings.Contains(header, "vx") {
		t.Errorf("derived velocity should be written, header: %s", header)
	}
	if strings.Contains(header, "alx") {
		t.Errorf("unrealized quantities should be skipped, header: %s", header)
	}
}
