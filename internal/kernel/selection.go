package kernel

import "slices"

// SelectionModel holds the kernels available for visualization and the one
// currently selected.
type SelectionModel struct {
	options   []*Kernel
	selection *Kernel
}

// NewSelectionModel creates an empty selection model.
func NewSelectionModel() *SelectionModel {
	return &SelectionModel{}
}

// Options returns the available kernels.
func (s *SelectionModel) Options() []*Kernel { return slices.Clone(s.options) }

// NumOptions returns the number of available kernels.
func (s *SelectionModel) NumOptions() int { return len(s.options) }

// AddKernel adds k to the options.
func (s *SelectionModel) AddKernel(k *Kernel) *SelectionModel {
	s.options = append(s.options, k)
	return s
}

// RemoveKernel removes every option equal to k. If k is selected the
// selection is cleared.
func (s *SelectionModel) RemoveKernel(k *Kernel) *SelectionModel {
	s.options = slices.DeleteFunc(s.options, k.Equals)
	if k.Equals(s.selection) {
		s.ClearSelection()
	}
	return s
}

// RemoveAllKernels removes every option and clears the selection.
func (s *SelectionModel) RemoveAllKernels() *SelectionModel {
	s.options = nil
	return s.ClearSelection()
}

// SelectKernel selects k if it is one of the options.
func (s *SelectionModel) SelectKernel(k *Kernel) bool {
	return s.selectFirst(k.Equals)
}

// SelectKernelByName selects the first option named name.
func (s *SelectionModel) SelectKernelByName(name string) bool {
	return s.selectFirst(func(o *Kernel) bool { return o.Name == name })
}

// SelectKernelByID selects the first option with the given ID.
func (s *SelectionModel) SelectKernelByID(id int) bool {
	return s.selectFirst(func(o *Kernel) bool { return o.ID == id })
}

func (s *SelectionModel) selectFirst(match func(*Kernel) bool) bool {
	if k := s.find(match); k != nil {
		s.selection = k
		return true
	}
	return false
}

// Selection returns the selected kernel or nil.
func (s *SelectionModel) Selection() *Kernel { return s.selection }

// ClearSelection clears the selection.
func (s *SelectionModel) ClearSelection() *SelectionModel {
	s.selection = nil
	return s
}

// HasSelection reports whether a kernel is selected.
func (s *SelectionModel) HasSelection() bool { return s.selection != nil }

// HasKernel reports whether k is one of the options.
func (s *SelectionModel) HasKernel(k *Kernel) bool { return s.FindKernel(k) != nil }

// HasKernelWithName reports whether an option is named name.
func (s *SelectionModel) HasKernelWithName(name string) bool {
	return s.FindKernelWithName(name) != nil
}

// HasKernelWithID reports whether an option has the given ID.
func (s *SelectionModel) HasKernelWithID(id int) bool { return s.FindKernelWithID(id) != nil }

// FindKernel returns the first option equal to k, or nil.
func (s *SelectionModel) FindKernel(k *Kernel) *Kernel { return s.find(k.Equals) }

// FindKernelWithName returns the first option named name, or nil.
func (s *SelectionModel) FindKernelWithName(name string) *Kernel {
	return s.find(func(o *Kernel) bool { return o.Name == name })
}

// FindKernelWithID returns the first option with the given ID, or nil.
func (s *SelectionModel) FindKernelWithID(id int) *Kernel {
	return s.find(func(o *Kernel) bool { return o.ID == id })
}

func (s *SelectionModel) find(match func(*Kernel) bool) *Kernel {
	i := slices.IndexFunc(s.options, match)
	if i < 0 {
		return nil
	}
	return s.options[i]
}
