package representation

import (
	"fmt"

	"github.com/mkleist/astrolabe/pkg/quantity"
)

// checkAngularSlot admits pure angles and angular rates.
func checkAngularSlot(name string, q quantity.Quantity) error {
	d := q.Unit().Dim()
	if d != (quantity.Dimension{Angle: 1}) && d != (quantity.Dimension{Angle: 1, Time: -1}) {
		return fmt.Errorf("%w: %s in %s, want an angle or angular rate", ErrComponentDimension, name, q.Unit())
	}
	return nil
}

// checkRadialSlot rejects angular units; lengths, speeds and dimensionless
// values all pass.
func checkRadialSlot(name string, q quantity.Quantity) error {
	if q.Unit().Dim().Angle != 0 {
		return fmt.Errorf("%w: %s in %s, want a non-angular unit", ErrComponentDimension, name, q.Unit())
	}
	return nil
}

// SphericalOffset is a differential in longitude, latitude and distance,
// anchored at a Spherical base point.
type SphericalOffset struct {
	dLon, dLat, dDistance quantity.Quantity
}

// NewSphericalOffset validates the component dimensions and broadcasts them
// to a common shape.
func NewSphericalOffset(dLon, dLat, dDistance quantity.Quantity) (*SphericalOffset, error) {
	if err := checkAngularSlot("d_lon", dLon); err != nil {
		return nil, err
	}
	if err := checkAngularSlot("d_lat", dLat); err != nil {
		return nil, err
	}
	if err := checkRadialSlot("d_distance", dDistance); err != nil {
		return nil, err
	}
	qs, err := quantity.BroadcastAll(dLon, dLat, dDistance)
	if err != nil {
		return nil, fmt.Errorf("spherical offset: %w", err)
	}
	return &SphericalOffset{dLon: qs[0], dLat: qs[1], dDistance: qs[2]}, nil
}

// DLon returns the longitude differential.
func (o *SphericalOffset) DLon() quantity.Quantity { return o.dLon }

// DLat returns the latitude differential.
func (o *SphericalOffset) DLat() quantity.Quantity { return o.dLat }

// DDistance returns the radial differential.
func (o *SphericalOffset) DDistance() quantity.Quantity { return o.dDistance }

func (o *SphericalOffset) Components() []string { return []string{"d_lon", "d_lat", "d_distance"} }
func (o *SphericalOffset) BaseKind() Kind       { return KindSpherical }
func (o *SphericalOffset) Len() int             { return o.dDistance.Len() }
func (o *SphericalOffset) IsScalar() bool       { return o.dDistance.IsScalar() }

func (o *SphericalOffset) ToCartesian(base Representation) (*Cartesian, error) {
	rb, err := resolveBase(base, KindSpherical)
	if err != nil {
		return nil, err
	}
	return linearize(rb, []quantity.Quantity{o.dLon, o.dLat, o.dDistance})
}

func (o *SphericalOffset) Norm(base Representation) (quantity.Quantity, error) {
	c, err := o.ToCartesian(base)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return c.Norm(), nil
}

func (o *SphericalOffset) Add(other Offset) (Offset, error) { return o.addScaled(other, 1) }
func (o *SphericalOffset) Sub(other Offset) (Offset, error) { return o.addScaled(other, -1) }

func (o *SphericalOffset) addScaled(other Offset, sign float64) (Offset, error) {
	so, ok := other.(*SphericalOffset)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrUnsupportedOperand, o, other)
	}
	dLon, err := o.dLon.Add(so.dLon.Scale(sign))
	if err != nil {
		return nil, err
	}
	dLat, err := o.dLat.Add(so.dLat.Scale(sign))
	if err != nil {
		return nil, err
	}
	dDistance, err := o.dDistance.Add(so.dDistance.Scale(sign))
	if err != nil {
		return nil, err
	}
	return &SphericalOffset{dLon: dLon, dLat: dLat, dDistance: dDistance}, nil
}

func (o *SphericalOffset) Neg() Offset { return o.Scale(-1) }

func (o *SphericalOffset) Scale(k float64) Offset {
	return &SphericalOffset{dLon: o.dLon.Scale(k), dLat: o.dLat.Scale(k), dDistance: o.dDistance.Scale(k)}
}

func (o *SphericalOffset) Index(i int) (Offset, error) {
	dLon, err := o.dLon.Index(i)
	if err != nil {
		return nil, err
	}
	dLat, err := o.dLat.Index(i)
	if err != nil {
		return nil, err
	}
	dDistance, err := o.dDistance.Index(i)
	if err != nil {
		return nil, err
	}
	return &SphericalOffset{dLon: dLon, dLat: dLat, dDistance: dDistance}, nil
}

func (o *SphericalOffset) String() string {
	return fmt.Sprintf("SphericalOffset{d_lon: %s, d_lat: %s, d_distance: %s}", o.dLon, o.dLat, o.dDistance)
}

// UnitSphericalOffset is a purely angular differential anchored at a
// UnitSpherical base point. It cannot represent radial motion, so converting
// a Cartesian displacement into this kind drops the radial part.
type UnitSphericalOffset struct {
	dLon, dLat quantity.Quantity
}

// NewUnitSphericalOffset validates the component dimensions and broadcasts
// them to a common shape.
func NewUnitSphericalOffset(dLon, dLat quantity.Quantity) (*UnitSphericalOffset, error) {
	if err := checkAngularSlot("d_lon", dLon); err != nil {
		return nil, err
	}
	if err := checkAngularSlot("d_lat", dLat); err != nil {
		return nil, err
	}
	qs, err := quantity.BroadcastAll(dLon, dLat)
	if err != nil {
		return nil, fmt.Errorf("unitspherical offset: %w", err)
	}
	return &UnitSphericalOffset{dLon: qs[0], dLat: qs[1]}, nil
}

// DLon returns the longitude differential.
func (o *UnitSphericalOffset) DLon() quantity.Quantity { return o.dLon }

// DLat returns the latitude differential.
func (o *UnitSphericalOffset) DLat() quantity.Quantity { return o.dLat }

func (o *UnitSphericalOffset) Components() []string { return []string{"d_lon", "d_lat"} }
func (o *UnitSphericalOffset) BaseKind() Kind       { return KindUnitSpherical }
func (o *UnitSphericalOffset) Len() int             { return o.dLon.Len() }
func (o *UnitSphericalOffset) IsScalar() bool       { return o.dLon.IsScalar() }

func (o *UnitSphericalOffset) ToCartesian(base Representation) (*Cartesian, error) {
	rb, err := resolveBase(base, KindUnitSpherical)
	if err != nil {
		return nil, err
	}
	return linearize(rb, []quantity.Quantity{o.dLon, o.dLat})
}

func (o *UnitSphericalOffset) Norm(base Representation) (quantity.Quantity, error) {
	c, err := o.ToCartesian(base)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return c.Norm(), nil
}

func (o *UnitSphericalOffset) Add(other Offset) (Offset, error) { return o.addScaled(other, 1) }
func (o *UnitSphericalOffset) Sub(other Offset) (Offset, error) { return o.addScaled(other, -1) }

func (o *UnitSphericalOffset) addScaled(other Offset, sign float64) (Offset, error) {
	uo, ok := other.(*UnitSphericalOffset)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrUnsupportedOperand, o, other)
	}
	dLon, err := o.dLon.Add(uo.dLon.Scale(sign))
	if err != nil {
		return nil, err
	}
	dLat, err := o.dLat.Add(uo.dLat.Scale(sign))
	if err != nil {
		return nil, err
	}
	return &UnitSphericalOffset{dLon: dLon, dLat: dLat}, nil
}

func (o *UnitSphericalOffset) Neg() Offset { return o.Scale(-1) }

func (o *UnitSphericalOffset) Scale(k float64) Offset {
	return &UnitSphericalOffset{dLon: o.dLon.Scale(k), dLat: o.dLat.Scale(k)}
}

func (o *UnitSphericalOffset) Index(i int) (Offset, error) {
	dLon, err := o.dLon.Index(i)
	if err != nil {
		return nil, err
	}
	dLat, err := o.dLat.Index(i)
	if err != nil {
		return nil, err
	}
	return &UnitSphericalOffset{dLon: dLon, dLat: dLat}, nil
}

func (o *UnitSphericalOffset) String() string {
	return fmt.Sprintf("UnitSphericalOffset{d_lon: %s, d_lat: %s}", o.dLon, o.dLat)
}

// PhysicsSphericalOffset is a differential in azimuth, inclination and
// radius, anchored at a PhysicsSpherical base point.
type PhysicsSphericalOffset struct {
	dPhi, dTheta, dR quantity.Quantity
}

// NewPhysicsSphericalOffset validates the component dimensions and broadcasts
// them to a common shape.
func NewPhysicsSphericalOffset(dPhi, dTheta, dR quantity.Quantity) (*PhysicsSphericalOffset, error) {
	if err := checkAngularSlot("d_phi", dPhi); err != nil {
		return nil, err
	}
	if err := checkAngularSlot("d_theta", dTheta); err != nil {
		return nil, err
	}
	if err := checkRadialSlot("d_r", dR); err != nil {
		return nil, err
	}
	qs, err := quantity.BroadcastAll(dPhi, dTheta, dR)
	if err != nil {
		return nil, fmt.Errorf("physicsspherical offset: %w", err)
	}
	return &PhysicsSphericalOffset{dPhi: qs[0], dTheta: qs[1], dR: qs[2]}, nil
}

// DPhi returns the azimuth differential.
func (o *PhysicsSphericalOffset) DPhi() quantity.Quantity { return o.dPhi }

// DTheta returns the inclination differential.
func (o *PhysicsSphericalOffset) DTheta() quantity.Quantity { return o.dTheta }

// DR returns the radial differential.
func (o *PhysicsSphericalOffset) DR() quantity.Quantity { return o.dR }

func (o *PhysicsSphericalOffset) Components() []string { return []string{"d_phi", "d_theta", "d_r"} }
func (o *PhysicsSphericalOffset) BaseKind() Kind       { return KindPhysicsSpherical }
func (o *PhysicsSphericalOffset) Len() int             { return o.dR.Len() }
func (o *PhysicsSphericalOffset) IsScalar() bool       { return o.dR.IsScalar() }

func (o *PhysicsSphericalOffset) ToCartesian(base Representation) (*Cartesian, error) {
	rb, err := resolveBase(base, KindPhysicsSpherical)
	if err != nil {
		return nil, err
	}
	return linearize(rb, []quantity.Quantity{o.dPhi, o.dTheta, o.dR})
}

func (o *PhysicsSphericalOffset) Norm(base Representation) (quantity.Quantity, error) {
	c, err := o.ToCartesian(base)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return c.Norm(), nil
}

func (o *PhysicsSphericalOffset) Add(other Offset) (Offset, error) { return o.addScaled(other, 1) }
func (o *PhysicsSphericalOffset) Sub(other Offset) (Offset, error) { return o.addScaled(other, -1) }

func (o *PhysicsSphericalOffset) addScaled(other Offset, sign float64) (Offset, error) {
	po, ok := other.(*PhysicsSphericalOffset)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrUnsupportedOperand, o, other)
	}
	dPhi, err := o.dPhi.Add(po.dPhi.Scale(sign))
	if err != nil {
		return nil, err
	}
	dTheta, err := o.dTheta.Add(po.dTheta.Scale(sign))
	if err != nil {
		return nil, err
	}
	dR, err := o.dR.Add(po.dR.Scale(sign))
	if err != nil {
		return nil, err
	}
	return &PhysicsSphericalOffset{dPhi: dPhi, dTheta: dTheta, dR: dR}, nil
}

func (o *PhysicsSphericalOffset) Neg() Offset { return o.Scale(-1) }

func (o *PhysicsSphericalOffset) Scale(k float64) Offset {
	return &PhysicsSphericalOffset{dPhi: o.dPhi.Scale(k), dTheta: o.dTheta.Scale(k), dR: o.dR.Scale(k)}
}

func (o *PhysicsSphericalOffset) Index(i int) (Offset, error) {
	dPhi, err := o.dPhi.Index(i)
	if err != nil {
		return nil, err
	}
	dTheta, err := o.dTheta.Index(i)
	if err != nil {
		return nil, err
	}
	dR, err := o.dR.Index(i)
	if err != nil {
		return nil, err
	}
	return &PhysicsSphericalOffset{dPhi: dPhi, dTheta: dTheta, dR: dR}, nil
}

func (o *PhysicsSphericalOffset) String() string {
	return fmt.Sprintf("PhysicsSphericalOffset{d_phi: %s, d_theta: %s, d_r: %s}", o.dPhi, o.dTheta, o.dR)
}

// CylindricalOffset is a differential in axial distance, azimuth and height,
// anchored at a Cylindrical base point.
type CylindricalOffset struct {
	dRho, dPhi, dZ quantity.Quantity
}

// NewCylindricalOffset validates the component dimensions and broadcasts them
// to a common shape.
func NewCylindricalOffset(dRho, dPhi, dZ quantity.Quantity) (*CylindricalOffset, error) {
	if err := checkRadialSlot("d_rho", dRho); err != nil {
		return nil, err
	}
	if err := checkAngularSlot("d_phi", dPhi); err != nil {
		return nil, err
	}
	if err := checkRadialSlot("d_z", dZ); err != nil {
		return nil, err
	}
	qs, err := quantity.BroadcastAll(dRho, dPhi, dZ)
	if err != nil {
		return nil, fmt.Errorf("cylindrical offset: %w", err)
	}
	return &CylindricalOffset{dRho: qs[0], dPhi: qs[1], dZ: qs[2]}, nil
}

// DRho returns the axial distance differential.
func (o *CylindricalOffset) DRho() quantity.Quantity { return o.dRho }

// DPhi returns the azimuth differential.
func (o *CylindricalOffset) DPhi() quantity.Quantity { return o.dPhi }

// DZ returns the height differential.
func (o *CylindricalOffset) DZ() quantity.Quantity { return o.dZ }

func (o *CylindricalOffset) Components() []string { return []string{"d_rho", "d_phi", "d_z"} }
func (o *CylindricalOffset) BaseKind() Kind       { return KindCylindrical }
func (o *CylindricalOffset) Len() int             { return o.dRho.Len() }
func (o *CylindricalOffset) IsScalar() bool       { return o.dRho.IsScalar() }

func (o *CylindricalOffset) ToCartesian(base Representation) (*Cartesian, error) {
	rb, err := resolveBase(base, KindCylindrical)
	if err != nil {
		return nil, err
	}
	return linearize(rb, []quantity.Quantity{o.dRho, o.dPhi, o.dZ})
}

func (o *CylindricalOffset) Norm(base Representation) (quantity.Quantity, error) {
	c, err := o.ToCartesian(base)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return c.Norm(), nil
}

func (o *CylindricalOffset) Add(other Offset) (Offset, error) { return o.addScaled(other, 1) }
func (o *CylindricalOffset) Sub(other Offset) (Offset, error) { return o.addScaled(other, -1) }

func (o *CylindricalOffset) addScaled(other Offset, sign float64) (Offset, error) {
	co, ok := other.(*CylindricalOffset)
	if !ok {
		return nil, fmt.Errorf("%w: cannot combine %T with %T", ErrUnsupportedOperand, o, other)
	}
	dRho, err := o.dRho.Add(co.dRho.Scale(sign))
	if err != nil {
		return nil, err
	}
	dPhi, err := o.dPhi.Add(co.dPhi.Scale(sign))
	if err != nil {
		return nil, err
	}
	dZ, err := o.dZ.Add(co.dZ.Scale(sign))
	if err != nil {
		return nil, err
	}
	return &CylindricalOffset{dRho: dRho, dPhi: dPhi, dZ: dZ}, nil
}

func (o *CylindricalOffset) Neg() Offset { return o.Scale(-1) }

func (o *CylindricalOffset) Scale(k float64) Offset {
	return &CylindricalOffset{dRho: o.dRho.Scale(k), dPhi: o.dPhi.Scale(k), dZ: o.dZ.Scale(k)}
}

func (o *CylindricalOffset) Index(i int) (Offset, error) {
	dRho, err := o.dRho.Index(i)
	if err != nil {
		return nil, err
	}
	dPhi, err := o.dPhi.Index(i)
	if err != nil {
		return nil, err
	}
	dZ, err := o.dZ.Index(i)
	if err != nil {
		return nil, err
	}
	return &CylindricalOffset{dRho: dRho, dPhi: dPhi, dZ: dZ}, nil
}

func (o *CylindricalOffset) String() string {
	return fmt.Sprintf("CylindricalOffset{d_rho: %s, d_phi: %s, d_z: %s}", o.dRho, o.dPhi, o.dZ)
}
