package lapwatch

import (
	"fmt"
	"time"

	"github.com/wrr/lapwatch/internal/watchtest"
)

func ExampleStopwatch_Summary() {
	clk := watchtest.NewClock(0)
	sw := NewWithClock(clk.Now)

	clk.Set(0)
	sw.Start()
	clk.Set(2 * time.Second)
	sw.Lap("load")
	clk.Set(3 * time.Second)
	sw.Lap("transform")
	clk.Set(4 * time.Second)
	sw.Stop()

	summary, _ := sw.Summary()
	fmt.Print(summary)
	// Output:
	// NAME                        TIME        CUMULATIVE      PERCENTAGE
	//  load                        2.000       2.000           50.000%
	//  transform                   1.000       3.000           25.000%
	//  _stop_                      1.000       4.000           25.000%
}
