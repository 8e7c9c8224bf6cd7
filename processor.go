package keysmith

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register compound tags with sentinel
	for _, tag := range contextTags {
		sentinel.Tag(tag)
	}
}

// Processor issues, checks, stores and sends license records of type T.
// Use Issue/Check at the licensee boundary and Store/Send everywhere else.
//
// Processors are safe for concurrent use. Configuration methods (SetEncoder,
// SetHasher, SetMasker) may be called at any time.
//
// Validation occurs automatically on first operation. Configure all required
// handlers before the first call to Issue, Check, Store, or Send.
type Processor[T Cloner[T]] struct {
	codec Codec

	// Mutable configuration protected by mu
	mu      sync.RWMutex
	encoder Encoder
	hashers map[HashAlgo]Hasher
	maskers map[MaskType]Masker

	// Validation state (runs once on first operation)
	validateOnce sync.Once
	validateErr  error

	// Per-context field plans (immutable after construction)
	issuePlans issuePlan
	checkPlans checkPlan
	storePlans storePlan
	sendPlans  sendPlan

	typeName string
}

// issuePlan holds field plans for issue context actions.
type issuePlan struct {
	serialFields []processorFieldPlan
	encodeFields []processorFieldPlan
}

func (p issuePlan) count() int { return len(p.serialFields) + len(p.encodeFields) }

// checkPlan holds field plans for check context actions.
type checkPlan struct {
	serialFields []processorFieldPlan
	encodeFields []processorFieldPlan
}

func (p checkPlan) count() int { return len(p.serialFields) + len(p.encodeFields) }

// storePlan holds field plans for store context actions.
type storePlan struct {
	hashFields []processorFieldPlan
}

// sendPlan holds field plans for send context actions.
type sendPlan struct {
	maskFields   []processorFieldPlan
	redactFields []processorFieldPlan
}

// processorFieldPlan describes how to transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	source     []int  // access path of the source name field (issue, check)
	name       string // field name for error messages
	tagVal     string // tag value (e.g., "Name", "sha256", "serial", "***")
	isBytes    bool   // true if field is []byte, false if string
	ptrIndices []int  // indices where pointer dereference is needed
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
}

// sourcePlan returns a plan addressing the source field of p.
func (p processorFieldPlan) sourcePlan() processorFieldPlan {
	return processorFieldPlan{index: p.source, name: p.tagVal, ptrIndices: p.ptrIndices}
}

// typeFieldPlans holds every context plan for one type.
type typeFieldPlans struct {
	typeName string
	issue    issuePlan
	check    checkPlan
	store    storePlan
	send     sendPlan
}

var (
	planCache   = make(map[reflect.Type]*typeFieldPlans)
	planCacheMu sync.RWMutex
)

// getOrBuildPlans returns the cached field plans for T, building them on first use.
func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	plans, ok := planCache[typ]
	planCacheMu.RUnlock()
	if ok {
		return plans, nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planCacheMu.Lock()
	planCache[typ] = plans
	planCacheMu.Unlock()
	return plans, nil
}

// NewProcessor creates a new Processor for type T.
//
// The processor is created with the default XOR encoder and the builtin
// hashers and maskers. Struct tags are validated here; a tag naming an
// unknown capability or a missing source field fails with ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:      codec,
		encoder:    XOR(),
		hashers:    builtinHashers(),
		maskers:    builtinMaskers(),
		typeName:   plans.typeName,
		issuePlans: plans.issue,
		checkPlans: plans.check,
		storePlans: plans.store,
		sendPlans:  plans.send,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetEncoder replaces the encoder used by issue.encode and check.encode.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetEncoder(enc Encoder) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encoder = enc
	return p
}

// SetHasher registers a hasher for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetHasher(algo HashAlgo, h Hasher) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashers[algo] = h
	return p
}

// SetMasker registers a masker for the given type.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetMasker(mt MaskType, m Masker) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.maskers[mt] = m
	return p
}

// Validate checks that all required capabilities are configured.
//
// Validation also runs automatically on first operation. Calling Validate
// explicitly allows catching configuration errors at startup.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCapabilities()
	})
	return p.validateErr
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	siblings := make(map[string]sentinel.FieldMetadata, len(spec.Fields))
	for _, field := range spec.Fields {
		siblings[field.Name] = field
	}

	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		// Handle nested structs
		if field.Kind == sentinel.KindStruct {
			nestedSpec := scanNestedType(field.ReflectType)
			if nestedSpec != nil {
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		// Handle pointer to struct
		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			nestedSpec := scanNestedType(field.ReflectType.Elem())
			if nestedSpec != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			continue
		}

		basePlan := processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		}

		// sourced resolves an issue/check tag to a plan bound to its source field.
		sourced := func(tag string) (processorFieldPlan, bool, error) {
			val, ok := field.Tags[tag]
			if !ok {
				return processorFieldPlan{}, false, nil
			}
			if isStringSlice || isStringMap {
				return processorFieldPlan{}, false, newConfigError(ErrInvalidTag, tag, fullName)
			}
			src, ok := siblings[val]
			if !ok || src.ReflectType.Kind() != reflect.String {
				return processorFieldPlan{}, false, newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plan.source = append(append([]int{}, parentIndex...), src.Index...)
			return plan, true, nil
		}

		if plan, ok, err := sourced(TagIssueSerial); err != nil {
			return err
		} else if ok {
			plans.issue.serialFields = append(plans.issue.serialFields, plan)
		}

		if plan, ok, err := sourced(TagIssueEncode); err != nil {
			return err
		} else if ok {
			plans.issue.encodeFields = append(plans.issue.encodeFields, plan)
		}

		if plan, ok, err := sourced(TagCheckSerial); err != nil {
			return err
		} else if ok {
			plans.check.serialFields = append(plans.check.serialFields, plan)
		}

		if plan, ok, err := sourced(TagCheckEncode); err != nil {
			return err
		} else if ok {
			plans.check.encodeFields = append(plans.check.encodeFields, plan)
		}

		if val, ok := field.Tags[TagStoreHash]; ok {
			if !IsValidHashAlgo(HashAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.store.hashFields = append(plans.store.hashFields, plan)
		}

		if val, ok := field.Tags[TagSendMask]; ok {
			if !IsValidMaskType(MaskType(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.send.maskFields = append(plans.send.maskFields, plan)
		}

		if val, ok := field.Tags[TagSendRedact]; ok {
			// Redact values are arbitrary strings, no validation needed
			plan := basePlan
			plan.tagVal = val
			plans.send.redactFields = append(plans.send.redactFields, plan)
		}
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseContextTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseContextTags extracts context.action tags from a struct tag.
func parseContextTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, ca := range contextTags {
		if val, ok := tag.Lookup(ca); ok {
			tags[ca] = val
		}
	}
	return tags
}

// validateCapabilities ensures all required capabilities are registered.
// Skips validation for actions where the type implements an override interface.
func (p *Processor[T]) validateCapabilities() error {
	var zero T
	_, hasIssuable := any(&zero).(Issuable)
	_, hasCheckable := any(&zero).(Checkable)
	_, hasHashable := any(&zero).(Hashable)
	_, hasMaskable := any(&zero).(Maskable)

	if p.encoder == nil {
		if !hasIssuable && len(p.issuePlans.encodeFields) > 0 {
			return newConfigError(ErrMissingEncoder, "", p.issuePlans.encodeFields[0].name)
		}
		if !hasCheckable && len(p.checkPlans.encodeFields) > 0 {
			return newConfigError(ErrMissingEncoder, "", p.checkPlans.encodeFields[0].name)
		}
	}

	if !hasHashable {
		for _, plan := range p.storePlans.hashFields {
			if _, ok := p.hashers[HashAlgo(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingHasher, plan.tagVal, plan.name)
			}
		}
	}

	if !hasMaskable {
		for _, plan := range p.sendPlans.maskFields {
			if _, ok := p.maskers[MaskType(plan.tagVal)]; !ok {
				return newConfigError(ErrMissingMasker, plan.tagVal, plan.name)
			}
		}
	}

	return nil
}

// Issue fills serial and token fields from their source names and marshals
// the result. Use for records handed to a licensee.
func (p *Processor[T]) Issue(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitIssueStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitIssueComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), p.issuePlans.count(), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if i, ok := any(&clone).(Issuable); ok {
		if err := i.Issue(p.encoder); err != nil {
			retErr = fmt.Errorf("issue: %w", err)
			return nil, retErr
		}
	} else if err := p.applyIssue(&clone); err != nil {
		retErr = fmt.Errorf("issue: %w", err)
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Check unmarshals data and verifies its serial and token fields against
// their source names. Use for records presented by a licensee.
func (p *Processor[T]) Check(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitCheckStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitCheckComplete(ctx, p.codec.ContentType(), p.typeName,
			len(data), time.Since(start), p.checkPlans.count(), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if c, ok := any(&obj).(Checkable); ok {
		if err := c.Check(p.encoder); err != nil {
			retErr = fmt.Errorf("check: %w", err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.applyCheck(&obj); err != nil {
		retErr = fmt.Errorf("check: %w", err)
		return nil, retErr
	}

	return &obj, nil
}

// Store applies store context actions (hash) and marshals the result.
// Use for records going to storage, where only a fingerprint of the serial is kept.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.storePlans.hashFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if h, ok := any(&clone).(Hashable); ok {
		if err := h.Hash(p.hashers); err != nil {
			retErr = fmt.Errorf("hash: %w", err)
			return nil, retErr
		}
	} else if err := p.applyHash(&clone); err != nil {
		retErr = fmt.Errorf("hash: %w", err)
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Send applies send context actions (mask, redact) and marshals the result.
// Use for records going to logs, dashboards or support tooling.
func (p *Processor[T]) Send(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitSendStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitSendComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start),
			len(p.sendPlans.maskFields), len(p.sendPlans.redactFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if m, ok := any(&clone).(Maskable); ok {
		if err := m.Mask(p.maskers); err != nil {
			retErr = fmt.Errorf("mask: %w", err)
			return nil, retErr
		}
	} else if err := p.applyMask(&clone); err != nil {
		retErr = fmt.Errorf("mask: %w", err)
		return nil, retErr
	}

	if r, ok := any(&clone).(Redactable); ok {
		if err := r.Redact(); err != nil {
			retErr = fmt.Errorf("redact: %w", err)
			return nil, retErr
		}
	} else if err := p.applyRedact(&clone); err != nil {
		retErr = fmt.Errorf("redact: %w", err)
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

func (p *Processor[T]) marshal(v *T) ([]byte, error) {
	var data []byte
	var err error
	if v == nil {
		data, err = p.codec.Marshal(nil)
	} else {
		data, err = p.codec.Marshal(v)
	}
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// applyIssue derives serials and encodes tokens via reflection.
func (p *Processor[T]) applyIssue(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.issuePlans.serialFields {
		name, field, ok := p.sourceAndField(rv, plan)
		if !ok {
			continue
		}
		serial, err := Derive(name)
		if err != nil {
			return newTransformError(ErrIssue, "issue", plan.name, err)
		}
		setScalar(field, plan, serial)
	}

	for _, plan := range p.issuePlans.encodeFields {
		name, field, ok := p.sourceAndField(rv, plan)
		if !ok {
			continue
		}
		setScalar(field, plan, p.encoder.Encode([]byte(name)))
	}

	return nil
}

// applyCheck verifies serials and tokens via reflection.
func (p *Processor[T]) applyCheck(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.checkPlans.serialFields {
		name, field, ok := p.sourceAndField(rv, plan)
		if !ok {
			continue // no record to verify
		}
		if err := Check(name, scalar(field, plan)); err != nil {
			return newTransformError(ErrCheck, "check", plan.name, err)
		}
	}

	for _, plan := range p.checkPlans.encodeFields {
		name, field, ok := p.sourceAndField(rv, plan)
		if !ok {
			continue // no record to verify
		}
		token := scalar(field, plan)
		decoded, err := p.encoder.Decode(token)
		if err != nil {
			return newTransformError(ErrCheck, "check", plan.name, err)
		}
		if string(decoded) != name {
			return newTransformError(ErrCheck, "check", plan.name, newMismatch("token", token))
		}
	}

	return nil
}

// applyHash applies hash transformations via reflection.
func (p *Processor[T]) applyHash(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.storePlans.hashFields {
		hasher := p.hashers[HashAlgo(plan.tagVal)]

		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		err := eachString(field, plan, func(v string) (string, error) {
			return fingerprint(hasher, v)
		})
		if err != nil {
			return newTransformError(ErrHash, "hash", plan.name, err)
		}
	}

	return nil
}

// applyMask applies mask transformations via reflection.
func (p *Processor[T]) applyMask(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.sendPlans.maskFields {
		masker := p.maskers[MaskType(plan.tagVal)]

		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		err := eachString(field, plan, func(v string) (string, error) {
			return masker.Mask(v), nil
		})
		if err != nil {
			return newTransformError(ErrMask, "mask", plan.name, err)
		}
	}

	return nil
}

// applyRedact applies redact transformations via reflection.
func (p *Processor[T]) applyRedact(obj *T) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.sendPlans.redactFields {
		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		err := eachString(field, plan, func(string) (string, error) {
			return plan.tagVal, nil
		})
		if err != nil {
			return newTransformError(ErrRedact, "redact", plan.name, err)
		}
	}

	return nil
}

// eachString rewrites every string held by field: the scalar itself, each
// element of a []string, or each value of a map[K]string.
func eachString(field reflect.Value, plan processorFieldPlan, fn func(string) (string, error)) error {
	switch {
	case plan.isSlice:
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			if !elem.CanSet() {
				continue
			}
			out, err := fn(elem.String())
			if err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
			elem.SetString(out)
		}
	case plan.isMap:
		iter := field.MapRange()
		for iter.Next() {
			k, v := iter.Key(), iter.Value()
			out, err := fn(v.String())
			if err != nil {
				return fmt.Errorf("[%v]: %w", k.Interface(), err)
			}
			field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
		}
	default:
		if !field.CanSet() {
			return nil
		}
		out, err := fn(scalar(field, plan))
		if err != nil {
			return err
		}
		setScalar(field, plan, out)
	}
	return nil
}

// scalar reads a string or []byte field as a string.
func scalar(field reflect.Value, plan processorFieldPlan) string {
	if plan.isBytes {
		return string(field.Bytes())
	}
	return field.String()
}

// setScalar writes a string or []byte field.
func setScalar(field reflect.Value, plan processorFieldPlan, value string) {
	if !field.CanSet() {
		return
	}
	if plan.isBytes {
		field.SetBytes([]byte(value))
	} else {
		field.SetString(value)
	}
}

// sourceAndField resolves the source name and the target field of an
// issue or check plan. ok is false when a nil pointer is on the path: the
// nested record is absent, so there is nothing to issue or verify.
func (p *Processor[T]) sourceAndField(rv reflect.Value, plan processorFieldPlan) (string, reflect.Value, bool) {
	field, ok := p.getField(rv, plan)
	if !ok {
		return "", reflect.Value{}, false
	}
	src, ok := p.getField(rv, plan.sourcePlan())
	if !ok {
		return "", reflect.Value{}, false
	}
	return src.String(), field, true
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
