package metar

import (
	"strconv"

	"k8s.io/utils/ptr"
)

// parseClouds collects cloud groups from body tokens in report-appearance
// order: standard coverage groups (FEW/SCT/BKN/OVC + height in hundreds of
// feet + optional convective type), and vertical-visibility groups (VVnnn for
// an obscured ceiling, VV/// for indeterminate). Clear-sky sentinels
// (SKC/CLR/NSC/NCD/CAVOK) carry no height and contribute no layer; an empty
// result is the clear-sky case.
func parseClouds(body []string) []CloudLayer {
	var layers []CloudLayer
	for _, tok := range body {
		if m := cloudRegex.FindStringSubmatch(tok); m != nil {
			height, _ := strconv.Atoi(m[2])
			layers = append(layers, CloudLayer{
				Coverage:   m[1],
				HeightFeet: ptr.To(HundredsFeet(height)),
				Type:       m[3],
			})
			continue
		}
		if m := vertVisRegex.FindStringSubmatch(tok); m != nil {
			layer := CloudLayer{Coverage: "VV"}
			if m[1] != "///" {
				height, _ := strconv.Atoi(m[1])
				layer.HeightFeet = ptr.To(HundredsFeet(height))
			}
			layers = append(layers, layer)
		}
	}
	return layers
}
