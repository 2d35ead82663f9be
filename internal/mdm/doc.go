// Package mdm analyses continuous beams with the moment distribution method.
//
// The pipeline is ComputeFEF (fixed-end forces per span), ComputeFactors
// (stiffness, distribution and carry-over factors per joint), Distribute
// (iterative balancing with carry-over) and PostProcess (shears, reactions,
// deflections). Solve runs all four.
//
// Sign convention, used by every value this package returns:
//
//   - member-end moments (Mi, Mj) are clockwise positive, so a hogging
//     moment is negative at the i end and positive at the j end;
//   - bending moments along a span are sagging positive;
//   - loads and deflections are downward positive;
//   - shears at span ends and joint reactions are upward positive;
//   - rotations are clockwise positive.
//
// Units are those of the model: with lengths in m and forces in kN,
// moments are kN·m and E·I must be kN·m².
package mdm
