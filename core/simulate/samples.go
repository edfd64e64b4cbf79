package simulate

import "fmt"

// SampleNames returns column identifiers ctrl_1..ctrl_k followed by
// trt_1..trt_m. The control block always comes first; column order is the
// output-table column order.
func SampleNames(controls, treatments int) []string {
	names := make([]string, 0, controls+treatments)
	for i := 0; i < controls; i++ {
		names = append(names, fmt.Sprintf("ctrl_%d", i+1))
	}
	for i := 0; i < treatments; i++ {
		names = append(names, fmt.Sprintf("trt_%d", i+1))
	}
	return names
}
