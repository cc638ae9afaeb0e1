package output

import "context"

// Apply implements this package's value-transformation rules. f runs at
// most once, and only once this Output's knownness has resolved.
//
// Whether f actually runs, and what the result's knownness and secrecy
// become, depends on the source's own knownness, secrecy, and the
// process-wide dry-run flag at the moment the source's knownness resolves
// (not at the moment Apply is called):
//
//   - source known: f runs on the real value; the result inherits f's
//     lifted return value, knownness, and secrecy (propagated OR'd with the
//     source's secrecy).
//   - source unknown, dry run: f does not run. The result is unknown, and
//     secret only if the source itself was secret.
//   - source unknown, not a dry run: f still runs, so that any side effects
//     it performs happen during the real execution, but its return value is
//     discarded — the result stays unknown and is secret only if the source
//     itself was secret. Whether an unknown source's inner value ever
//     carries meaningful data to give f is up to the caller; this package
//     passes through whatever the source's internal value cell holds.
func (o *impl) Apply(ctx context.Context, f func(context.Context, any) (any, error)) Output {
	deps := o.deps
	return deriveOutput(deps, func(ctx context.Context) (any, bool, bool, ResourceSet, error) {
		isKnownSrc, err := o.known.Await(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		isSecretSrc, err := o.secret.Await(ctx)
		if err != nil {
			return nil, false, false, nil, err
		}
		srcAllDeps, err := o.AllDeps(ctx)
		if err != nil {
			// srcAllDeps is exactly what failed; isSecretSrc is already
			// resolved, so it's still usable even though allDeps isn't.
			return nil, false, isSecretSrc, nil, err
		}
		rawVal, err := o.value.Await(ctx)
		if err != nil {
			// Everything except the raw value itself is already resolved.
			return nil, false, isSecretSrc, srcAllDeps, err
		}

		invoke := isKnownSrc || !IsDryRun()
		if !invoke {
			return nil, false, isSecretSrc, srcAllDeps, nil
		}

		fVal, err := f(ctx, rawVal)
		if err != nil {
			// f's failure invalidates the result's value and knownness, but
			// not the source's own secrecy and deps, which were fully
			// resolved before f ever ran.
			return nil, false, isSecretSrc, srcAllDeps, err
		}

		if !isKnownSrc {
			// Invoked only for side effects; the result stays unknown and
			// f's return value is never observed.
			return nil, false, isSecretSrc, srcAllDeps, nil
		}

		inner, err := Lift(ctx, fVal)
		if err != nil {
			return nil, false, isSecretSrc, srcAllDeps, err
		}
		innerKnown, err := inner.IsKnown(ctx)
		if err != nil {
			return nil, false, isSecretSrc, srcAllDeps, err
		}
		innerSecret, err := inner.IsSecret(ctx)
		if err != nil {
			return nil, false, isSecretSrc, srcAllDeps, err
		}
		innerAllDeps, err := inner.AllDeps(ctx)
		if err != nil {
			// innerSecret resolved in the step above, so the combined
			// secret is already known even though innerAllDeps isn't.
			return nil, false, isSecretSrc || innerSecret, srcAllDeps, err
		}
		innerValue, err := inner.Value(ctx)
		if err != nil {
			// Every metadata field resolved; only the value itself failed.
			return nil, false, isSecretSrc || innerSecret, Union(srcAllDeps, innerAllDeps), err
		}

		secret := isSecretSrc || innerSecret
		allDeps := Union(srcAllDeps, innerAllDeps)
		return innerValue, innerKnown, secret, allDeps, nil
	})
}
