package manifold

import "github.com/akmonengine/manifold/support"

// ContactPatch is the contact region computed between two shapes: the
// same structure as a support set, playing its second role. Tf is the
// contact frame, with the origin at the contact position and the Z axis
// along the contact normal; the points are the patch polygon in frame
// coordinates; Penetration carries the contact depth so the patch points
// can be re-embedded onto either shape's surface through PointOnShape1
// and PointOnShape2.
type ContactPatch = support.SupportSet
