package engine

// LayerMask selects collision layers, one bit per layer index (0-31).
type LayerMask uint32

const (
	DefaultLayer = 0
	AllLayers    = ^LayerMask(0)
)

// MaskOf builds a mask containing the given layers.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l < 0 || l > 31 {
			continue
		}
		m |= 1 << uint(l)
	}
	return m
}

// Contains reports whether layer is selected by the mask.
func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}
