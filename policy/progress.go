package policy

// RollupProgress converts a module completion count into the enrollment's
// progress fraction. The second result reports whether the course is now
// fully completed. A course with no published modules never completes.
func RollupProgress(completedModules, totalModules int) (float64, bool) {
	if totalModules <= 0 {
		return 0.0, false
	}
	if completedModules > totalModules {
		completedModules = totalModules
	}
	progress := float64(completedModules) / float64(totalModules)
	return progress, progress >= 1.0
}
