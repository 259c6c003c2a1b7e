package ebml

// Element kinds. The kind decides how an element's payload is interpreted:
// master elements hold child elements instead of data, everything else is a
// scalar or an opaque binary blob.
const (
	ElementTypeUnknown uint8 = 0x0
	ElementTypeMaster  uint8 = 0x1
	ElementTypeUint    uint8 = 0x2
	ElementTypeInt     uint8 = 0x3
	ElementTypeString  uint8 = 0x4
	ElementTypeUnicode uint8 = 0x5
	ElementTypeBinary  uint8 = 0x6
	ElementTypeFloat   uint8 = 0x7
	ElementTypeDate    uint8 = 0x8
)

// ElementRegister contains the ID, kind and name of the standard
// WebM/Matroska elements.
type ElementRegister struct {
	ID   uint64
	Type uint8
	Name string
}

var (
	ElementEBML               = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementEBMLVersion        = ElementRegister{0x4286, ElementTypeUint, "EBMLVersion"}
	ElementEBMLReadVersion    = ElementRegister{0x42f7, ElementTypeUint, "EBMLReadVersion"}
	ElementEBMLMaxIDLength    = ElementRegister{0x42f2, ElementTypeUint, "EBMLMaxIDLength"}
	ElementEBMLMaxSizeLength  = ElementRegister{0x42f3, ElementTypeUint, "EBMLMaxSizeLength"}
	ElementDocType            = ElementRegister{0x4282, ElementTypeString, "DocType"}
	ElementDocTypeVersion     = ElementRegister{0x4287, ElementTypeUint, "DocTypeVersion"}
	ElementDocTypeReadVersion = ElementRegister{0x4285, ElementTypeUint, "DocTypeReadVersion"}
	ElementVoid               = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementCRC32              = ElementRegister{0xbf, ElementTypeBinary, "CRC-32"}

	ElementSignatureSlot        = ElementRegister{0x1b538667, ElementTypeMaster, "SignatureSlot"}
	ElementSignatureAlgo        = ElementRegister{0x7e8a, ElementTypeUint, "SignatureAlgo"}
	ElementSignatureHash        = ElementRegister{0x7e9a, ElementTypeUint, "SignatureHash"}
	ElementSignaturePublicKey   = ElementRegister{0x7ea5, ElementTypeBinary, "SignaturePublicKey"}
	ElementSignature            = ElementRegister{0x7eb5, ElementTypeBinary, "Signature"}
	ElementSignatureElements    = ElementRegister{0x7e5b, ElementTypeMaster, "SignatureElements"}
	ElementSignatureElementList = ElementRegister{0x7e7b, ElementTypeMaster, "SignatureElementList"}
	ElementSignedElement        = ElementRegister{0x6532, ElementTypeBinary, "SignedElement"}

	ElementSegment        = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementSeekHead       = ElementRegister{0x114d9b74, ElementTypeMaster, "SeekHead"}
	ElementSeek           = ElementRegister{0x4dbb, ElementTypeMaster, "Seek"}
	ElementSeekID         = ElementRegister{0x53ab, ElementTypeBinary, "SeekID"}
	ElementSeekPosition   = ElementRegister{0x53ac, ElementTypeUint, "SeekPosition"}
	ElementInfo           = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementSegmentUID     = ElementRegister{0x73a4, ElementTypeBinary, "SegmentUID"}
	ElementTimestampScale = ElementRegister{0x2ad7b1, ElementTypeUint, "TimestampScale"}
	ElementDuration       = ElementRegister{0x4489, ElementTypeFloat, "Duration"}
	ElementDateUTC        = ElementRegister{0x4461, ElementTypeDate, "DateUTC"}
	ElementMuxingApp      = ElementRegister{0x4d80, ElementTypeUnicode, "MuxingApp"}
	ElementWritingApp     = ElementRegister{0x5741, ElementTypeUnicode, "WritingApp"}

	ElementCluster        = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimestamp      = ElementRegister{0xe7, ElementTypeUint, "Timestamp"}
	ElementPosition       = ElementRegister{0xa7, ElementTypeUint, "Position"}
	ElementPrevSize       = ElementRegister{0xab, ElementTypeUint, "PrevSize"}
	ElementSimpleBlock    = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementBlockGroup     = ElementRegister{0xa0, ElementTypeMaster, "BlockGroup"}
	ElementBlock          = ElementRegister{0xa1, ElementTypeBinary, "Block"}
	ElementBlockDuration  = ElementRegister{0x9b, ElementTypeUint, "BlockDuration"}
	ElementReferenceBlock = ElementRegister{0xfb, ElementTypeInt, "ReferenceBlock"}
	ElementDiscardPadding = ElementRegister{0x75a2, ElementTypeInt, "DiscardPadding"}
	ElementSlices         = ElementRegister{0x8e, ElementTypeMaster, "Slices"}
	ElementTimeSlice      = ElementRegister{0xe8, ElementTypeMaster, "TimeSlice"}
	ElementLaceNumber     = ElementRegister{0xcc, ElementTypeUint, "LaceNumber"}

	ElementTracks              = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry          = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber         = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementTrackUID            = ElementRegister{0x73c5, ElementTypeUint, "TrackUID"}
	ElementTrackType           = ElementRegister{0x83, ElementTypeUint, "TrackType"}
	ElementFlagEnabled         = ElementRegister{0xb9, ElementTypeUint, "FlagEnabled"}
	ElementFlagDefault         = ElementRegister{0x88, ElementTypeUint, "FlagDefault"}
	ElementFlagForced          = ElementRegister{0x55aa, ElementTypeUint, "FlagForced"}
	ElementFlagLacing          = ElementRegister{0x9c, ElementTypeUint, "FlagLacing"}
	ElementDefaultDuration     = ElementRegister{0x23e383, ElementTypeUint, "DefaultDuration"}
	ElementName                = ElementRegister{0x536e, ElementTypeUnicode, "Name"}
	ElementLanguage            = ElementRegister{0x22b59c, ElementTypeString, "Language"}
	ElementCodecID             = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecPrivate        = ElementRegister{0x63a2, ElementTypeBinary, "CodecPrivate"}
	ElementCodecName           = ElementRegister{0x258688, ElementTypeUnicode, "CodecName"}
	ElementCodecDelay          = ElementRegister{0x56aa, ElementTypeUint, "CodecDelay"}
	ElementSeekPreRoll         = ElementRegister{0x56bb, ElementTypeUint, "SeekPreRoll"}
	ElementTrackTimestampScale = ElementRegister{0x23314f, ElementTypeFloat, "TrackTimestampScale"}

	ElementVideo             = ElementRegister{0xe0, ElementTypeMaster, "Video"}
	ElementFlagInterlaced    = ElementRegister{0x9a, ElementTypeUint, "FlagInterlaced"}
	ElementStereoMode        = ElementRegister{0x53b8, ElementTypeUint, "StereoMode"}
	ElementAlphaMode         = ElementRegister{0x53c0, ElementTypeUint, "AlphaMode"}
	ElementPixelWidth        = ElementRegister{0xb0, ElementTypeUint, "PixelWidth"}
	ElementPixelHeight       = ElementRegister{0xba, ElementTypeUint, "PixelHeight"}
	ElementPixelCropBottom   = ElementRegister{0x54aa, ElementTypeUint, "PixelCropBottom"}
	ElementPixelCropTop      = ElementRegister{0x54bb, ElementTypeUint, "PixelCropTop"}
	ElementPixelCropLeft     = ElementRegister{0x54cc, ElementTypeUint, "PixelCropLeft"}
	ElementPixelCropRight    = ElementRegister{0x54dd, ElementTypeUint, "PixelCropRight"}
	ElementDisplayWidth      = ElementRegister{0x54b0, ElementTypeUint, "DisplayWidth"}
	ElementDisplayHeight     = ElementRegister{0x54ba, ElementTypeUint, "DisplayHeight"}
	ElementDisplayUnit       = ElementRegister{0x54b2, ElementTypeUint, "DisplayUnit"}
	ElementAspectRatioType   = ElementRegister{0x54b3, ElementTypeUint, "AspectRatioType"}
	ElementProjection        = ElementRegister{0x7670, ElementTypeMaster, "Projection"}
	ElementProjectionType    = ElementRegister{0x7671, ElementTypeUint, "ProjectionType"}
	ElementProjectionPrivate = ElementRegister{0x7672, ElementTypeBinary, "ProjectionPrivate"}
	ElementProjectionYaw     = ElementRegister{0x7673, ElementTypeFloat, "ProjectionPoseYaw"}
	ElementProjectionPitch   = ElementRegister{0x7674, ElementTypeFloat, "ProjectionPosePitch"}
	ElementProjectionRoll    = ElementRegister{0x7675, ElementTypeFloat, "ProjectionPoseRoll"}

	ElementAudio                   = ElementRegister{0xe1, ElementTypeMaster, "Audio"}
	ElementSamplingFrequency       = ElementRegister{0xb5, ElementTypeFloat, "SamplingFrequency"}
	ElementOutputSamplingFrequency = ElementRegister{0x78b5, ElementTypeFloat, "OutputSamplingFrequency"}
	ElementChannels                = ElementRegister{0x9f, ElementTypeUint, "Channels"}
	ElementBitDepth                = ElementRegister{0x6264, ElementTypeUint, "BitDepth"}

	ElementContentEncodings      = ElementRegister{0x6d80, ElementTypeMaster, "ContentEncodings"}
	ElementContentEncoding       = ElementRegister{0x6240, ElementTypeMaster, "ContentEncoding"}
	ElementContentEncodingOrder  = ElementRegister{0x5031, ElementTypeUint, "ContentEncodingOrder"}
	ElementContentEncodingScope  = ElementRegister{0x5032, ElementTypeUint, "ContentEncodingScope"}
	ElementContentEncodingType   = ElementRegister{0x5033, ElementTypeUint, "ContentEncodingType"}
	ElementContentCompression    = ElementRegister{0x5034, ElementTypeMaster, "ContentCompression"}
	ElementContentCompAlgo       = ElementRegister{0x4254, ElementTypeUint, "ContentCompAlgo"}
	ElementContentCompSettings   = ElementRegister{0x4255, ElementTypeBinary, "ContentCompSettings"}
	ElementContentEncryption     = ElementRegister{0x5035, ElementTypeMaster, "ContentEncryption"}
	ElementContentEncAlgo        = ElementRegister{0x47e1, ElementTypeUint, "ContentEncAlgo"}
	ElementContentEncKeyID       = ElementRegister{0x47e2, ElementTypeBinary, "ContentEncKeyID"}
	ElementContentEncAESSettings = ElementRegister{0x47e7, ElementTypeMaster, "ContentEncAESSettings"}
	ElementAESSettingsCipherMode = ElementRegister{0x47e8, ElementTypeUint, "AESSettingsCipherMode"}

	ElementCues               = ElementRegister{0x1c53bb6b, ElementTypeMaster, "Cues"}
	ElementCuePoint           = ElementRegister{0xbb, ElementTypeMaster, "CuePoint"}
	ElementCueTime            = ElementRegister{0xb3, ElementTypeUint, "CueTime"}
	ElementCueTrackPositions  = ElementRegister{0xb7, ElementTypeMaster, "CueTrackPositions"}
	ElementCueTrack           = ElementRegister{0xf7, ElementTypeUint, "CueTrack"}
	ElementCueClusterPosition = ElementRegister{0xf1, ElementTypeUint, "CueClusterPosition"}
	ElementCueBlockNumber     = ElementRegister{0x5378, ElementTypeUint, "CueBlockNumber"}

	ElementChapters         = ElementRegister{0x1043a770, ElementTypeMaster, "Chapters"}
	ElementEditionEntry     = ElementRegister{0x45b9, ElementTypeMaster, "EditionEntry"}
	ElementChapterAtom      = ElementRegister{0xb6, ElementTypeMaster, "ChapterAtom"}
	ElementChapterUID       = ElementRegister{0x73c4, ElementTypeUint, "ChapterUID"}
	ElementChapterStringUID = ElementRegister{0x5654, ElementTypeUnicode, "ChapterStringUID"}
	ElementChapterTimeStart = ElementRegister{0x91, ElementTypeUint, "ChapterTimeStart"}
	ElementChapterDisplay   = ElementRegister{0x80, ElementTypeMaster, "ChapterDisplay"}
	ElementChapString       = ElementRegister{0x85, ElementTypeUnicode, "ChapString"}
	ElementChapLanguage     = ElementRegister{0x437c, ElementTypeString, "ChapLanguage"}

	ElementTags            = ElementRegister{0x1254c367, ElementTypeMaster, "Tags"}
	ElementTag             = ElementRegister{0x7373, ElementTypeMaster, "Tag"}
	ElementTargets         = ElementRegister{0x63c0, ElementTypeMaster, "Targets"}
	ElementTargetTypeValue = ElementRegister{0x68ca, ElementTypeUint, "TargetTypeValue"}
	ElementTargetType      = ElementRegister{0x63ca, ElementTypeString, "TargetType"}
	ElementTagTrackUID     = ElementRegister{0x63c5, ElementTypeUint, "TagTrackUID"}
	ElementSimpleTag       = ElementRegister{0x67c8, ElementTypeMaster, "SimpleTag"}
	ElementTagName         = ElementRegister{0x45a3, ElementTypeUnicode, "TagName"}
	ElementTagLanguage     = ElementRegister{0x447a, ElementTypeString, "TagLanguage"}
	ElementTagDefault      = ElementRegister{0x4484, ElementTypeUint, "TagDefault"}
	ElementTagString       = ElementRegister{0x4487, ElementTypeUnicode, "TagString"}
	ElementTagBinary       = ElementRegister{0x4485, ElementTypeBinary, "TagBinary"}
)

var registers map[uint64]ElementRegister

func init() {
	all := []ElementRegister{
		ElementEBML, ElementEBMLVersion, ElementEBMLReadVersion,
		ElementEBMLMaxIDLength, ElementEBMLMaxSizeLength, ElementDocType,
		ElementDocTypeVersion, ElementDocTypeReadVersion, ElementVoid,
		ElementCRC32,
		ElementSignatureSlot, ElementSignatureAlgo, ElementSignatureHash,
		ElementSignaturePublicKey, ElementSignature, ElementSignatureElements,
		ElementSignatureElementList, ElementSignedElement,
		ElementSegment, ElementSeekHead, ElementSeek, ElementSeekID,
		ElementSeekPosition, ElementInfo, ElementSegmentUID,
		ElementTimestampScale, ElementDuration, ElementDateUTC,
		ElementMuxingApp, ElementWritingApp,
		ElementCluster, ElementTimestamp, ElementPosition, ElementPrevSize,
		ElementSimpleBlock, ElementBlockGroup, ElementBlock,
		ElementBlockDuration, ElementReferenceBlock, ElementDiscardPadding,
		ElementSlices, ElementTimeSlice, ElementLaceNumber,
		ElementTracks, ElementTrackEntry, ElementTrackNumber, ElementTrackUID,
		ElementTrackType, ElementFlagEnabled, ElementFlagDefault,
		ElementFlagForced, ElementFlagLacing, ElementDefaultDuration,
		ElementName, ElementLanguage, ElementCodecID, ElementCodecPrivate,
		ElementCodecName, ElementCodecDelay, ElementSeekPreRoll,
		ElementTrackTimestampScale,
		ElementVideo, ElementFlagInterlaced, ElementStereoMode,
		ElementAlphaMode, ElementPixelWidth, ElementPixelHeight,
		ElementPixelCropBottom, ElementPixelCropTop, ElementPixelCropLeft,
		ElementPixelCropRight, ElementDisplayWidth, ElementDisplayHeight,
		ElementDisplayUnit, ElementAspectRatioType,
		ElementProjection, ElementProjectionType, ElementProjectionPrivate,
		ElementProjectionYaw, ElementProjectionPitch, ElementProjectionRoll,
		ElementAudio, ElementSamplingFrequency,
		ElementOutputSamplingFrequency, ElementChannels, ElementBitDepth,
		ElementContentEncodings, ElementContentEncoding,
		ElementContentEncodingOrder, ElementContentEncodingScope,
		ElementContentEncodingType, ElementContentCompression,
		ElementContentCompAlgo, ElementContentCompSettings,
		ElementContentEncryption, ElementContentEncAlgo,
		ElementContentEncKeyID, ElementContentEncAESSettings,
		ElementAESSettingsCipherMode,
		ElementCues, ElementCuePoint, ElementCueTime,
		ElementCueTrackPositions, ElementCueTrack, ElementCueClusterPosition,
		ElementCueBlockNumber,
		ElementChapters, ElementEditionEntry, ElementChapterAtom,
		ElementChapterUID, ElementChapterStringUID, ElementChapterTimeStart,
		ElementChapterDisplay, ElementChapString, ElementChapLanguage,
		ElementTags, ElementTag, ElementTargets, ElementTargetTypeValue,
		ElementTargetType, ElementTagTrackUID, ElementSimpleTag,
		ElementTagName, ElementTagLanguage, ElementTagDefault,
		ElementTagString, ElementTagBinary,
	}

	registers = make(map[uint64]ElementRegister, len(all))
	for _, reg := range all {
		registers[reg.ID] = reg
	}
}

// GetElementRegister looks up the register for id. Unregistered identifiers
// are not an error: they come back with the unknown kind and are handled as
// opaque binary.
func GetElementRegister(id uint64) ElementRegister {
	if reg, ok := registers[id]; ok {
		return reg
	}

	return ElementRegister{ID: id, Type: ElementTypeUnknown}
}
