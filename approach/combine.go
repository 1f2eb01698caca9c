package approach

import "go.viam.com/approachmotion/trajectory"

// combineTrajectories expands a group-scoped approach onto the full joint set
// and appends the input motion after it.
//
// Joints covered by the approach's joint order are copied through. Joints
// outside the planning group are bridged with linear interpolation from their
// current position to the input's first waypoint over the approach's duration.
// The last approach waypoint duplicates the input's first waypoint by
// construction, so it is dropped before appending a multi-point input.
func combineTrajectories(
	jointNames []string,
	currentPos []float64,
	trajIn []trajectory.Point,
	approach trajectory.Trajectory,
) []trajectory.Point {
	jointDim := len(jointNames)
	tMax := approach.Points[len(approach.Points)-1].TimeFromStart.Seconds()

	trajOut := make([]trajectory.Point, 0, len(approach.Points)+len(trajIn))
	for _, apprPoint := range approach.Points {
		hasVelocities := len(apprPoint.Velocities) > 0
		hasAccelerations := len(apprPoint.Accelerations) > 0

		point := trajectory.Point{
			Positions:     make([]float64, jointDim),
			TimeFromStart: apprPoint.TimeFromStart,
		}
		if hasVelocities {
			point.Velocities = make([]float64, jointDim)
		}
		if hasAccelerations {
			point.Accelerations = make([]float64, jointDim)
		}

		for i, name := range jointNames {
			if apprIdx := trajectory.IndexOf(approach.JointNames, name); apprIdx >= 0 {
				// Joint is part of the planned approach.
				point.Positions[i] = apprPoint.Positions[apprIdx]
				if hasVelocities {
					point.Velocities[i] = apprPoint.Velocities[apprIdx]
				}
				if hasAccelerations {
					point.Accelerations[i] = apprPoint.Accelerations[apprIdx]
				}
				continue
			}

			// Joint is not part of the planning group, and hence not contained
			// in the approach plan. Default to linear interpolation.
			pMin := currentPos[i]
			pMax := trajIn[0].Positions[i]
			if tMax == 0 {
				// Degenerate window; land on the goal directly.
				point.Positions[i] = pMax
				continue
			}
			vel := (pMax - pMin) / tMax
			point.Positions[i] = pMin + vel*apprPoint.TimeFromStart.Seconds()
			if hasVelocities {
				point.Velocities[i] = vel
			}
			// Acceleration stays zero.
		}

		trajOut = append(trajOut, point)
	}

	// If the input trajectory is a single point, the approach is all there is
	// to execute.
	if len(trajIn) == 1 {
		return trajOut
	}

	// Otherwise append the input after the approach, shifted by the approach
	// duration, replacing the duplicate waypoint at the seam.
	offset := trajOut[len(trajOut)-1].TimeFromStart
	trajOut = trajOut[:len(trajOut)-1]
	for _, point := range trajIn {
		shifted := point.Copy()
		shifted.TimeFromStart += offset
		trajOut = append(trajOut, shifted)
	}
	return trajOut
}
