package cst

// VisitRootHandle visits h through the Visitor's VisitRoot hook.
func (w *Walker) VisitRootHandle(h RootHandle) error {
	return w.visitNonTerminal(h.id, NodeRoot, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitRoot(w, h, view)
	})
}

// VisitRootSuper visits the children of a Root node in order.
func (w *Walker) VisitRootSuper(_ RootHandle, view RootView) error {
	return w.VisitSwonHandle(view.Swon)
}

// VisitSwonHandle visits h through the Visitor's VisitSwon hook.
func (w *Walker) VisitSwonHandle(h SwonHandle) error {
	return w.visitNonTerminal(h.id, NodeSwon, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSwon(w, h, view)
	})
}

// VisitSwonSuper visits the children of a Swon node in order.
func (w *Walker) VisitSwonSuper(_ SwonHandle, view SwonView) error {
	if err := w.VisitSwonListHandle(view.SwonList); err != nil {
		return err
	}
	return w.VisitSwonList0Handle(view.SwonList0)
}

// VisitSwonListHandle visits h through the Visitor's VisitSwonList hook.
func (w *Walker) VisitSwonListHandle(h SwonListHandle) error {
	return w.visitNonTerminal(h.id, NodeSwonList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSwonList(w, h, view)
	})
}

// VisitSwonListSuper visits the children of a SwonList node in order.
func (w *Walker) VisitSwonListSuper(_ SwonListHandle, view *SwonListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitBindingHandle(view.Binding); err != nil {
		return err
	}
	return w.VisitSwonListHandle(view.SwonList)
}

// VisitSwonList0Handle visits h through the Visitor's VisitSwonList0 hook.
func (w *Walker) VisitSwonList0Handle(h SwonList0Handle) error {
	return w.visitNonTerminal(h.id, NodeSwonList0, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSwonList0(w, h, view)
	})
}

// VisitSwonList0Super visits the children of a SwonList0 node in order.
func (w *Walker) VisitSwonList0Super(_ SwonList0Handle, view *SwonList0View) error {
	if view == nil {
		return nil
	}
	if err := w.VisitSectionHandle(view.Section); err != nil {
		return err
	}
	return w.VisitSwonList0Handle(view.SwonList0)
}

// VisitBindingHandle visits h through the Visitor's VisitBinding hook.
func (w *Walker) VisitBindingHandle(h BindingHandle) error {
	return w.visitNonTerminal(h.id, NodeBinding, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitBinding(w, h, view)
	})
}

// VisitBindingSuper visits the children of a Binding node in order.
func (w *Walker) VisitBindingSuper(_ BindingHandle, view BindingView) error {
	if err := w.VisitKeysHandle(view.Keys); err != nil {
		return err
	}
	return w.VisitBindingRhsHandle(view.BindingRhs)
}

// VisitBindingRhsHandle visits h through the Visitor's VisitBindingRhs hook.
func (w *Walker) VisitBindingRhsHandle(h BindingRhsHandle) error {
	return w.visitNonTerminal(h.id, NodeBindingRhs, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitBindingRhs(w, h, view)
	})
}

// VisitBindingRhsSuper visits whichever alternative view holds.
func (w *Walker) VisitBindingRhsSuper(_ BindingRhsHandle, view BindingRhsView) error {
	switch v := view.(type) {
	case ValueBindingHandle:
		return w.VisitValueBindingHandle(v)
	case SectionBindingHandle:
		return w.VisitSectionBindingHandle(v)
	case TextBindingHandle:
		return w.VisitTextBindingHandle(v)
	}
	return nil
}

// VisitValueBindingHandle visits h through the Visitor's VisitValueBinding hook.
func (w *Walker) VisitValueBindingHandle(h ValueBindingHandle) error {
	return w.visitNonTerminal(h.id, NodeValueBinding, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitValueBinding(w, h, view)
	})
}

// VisitValueBindingSuper visits the children of a ValueBinding node in order.
func (w *Walker) VisitValueBindingSuper(_ ValueBindingHandle, view ValueBindingView) error {
	if err := w.VisitBindHandle(view.Bind); err != nil {
		return err
	}
	return w.VisitValueHandle(view.Value)
}

// VisitSectionBindingHandle visits h through the Visitor's VisitSectionBinding hook.
func (w *Walker) VisitSectionBindingHandle(h SectionBindingHandle) error {
	return w.visitNonTerminal(h.id, NodeSectionBinding, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSectionBinding(w, h, view)
	})
}

// VisitSectionBindingSuper visits the children of a SectionBinding node in order.
func (w *Walker) VisitSectionBindingSuper(_ SectionBindingHandle, view SectionBindingView) error {
	if err := w.VisitBeginHandle(view.Begin); err != nil {
		return err
	}
	if err := w.VisitSwonHandle(view.Swon); err != nil {
		return err
	}
	return w.VisitEndHandle(view.End)
}

// VisitTextBindingHandle visits h through the Visitor's VisitTextBinding hook.
func (w *Walker) VisitTextBindingHandle(h TextBindingHandle) error {
	return w.visitNonTerminal(h.id, NodeTextBinding, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTextBinding(w, h, view)
	})
}

// VisitTextBindingSuper visits the children of a TextBinding node in order.
func (w *Walker) VisitTextBindingSuper(_ TextBindingHandle, view TextBindingView) error {
	if err := w.VisitTextStartHandle(view.TextStart); err != nil {
		return err
	}
	if err := w.VisitTextBindingOptHandle(view.TextBindingOpt); err != nil {
		return err
	}
	if err := w.VisitTextHandle(view.Text); err != nil {
		return err
	}
	return w.VisitNewlineHandle(view.Newline)
}

// VisitTextBindingOptHandle visits h through the Visitor's VisitTextBindingOpt hook.
func (w *Walker) VisitTextBindingOptHandle(h TextBindingOptHandle) error {
	return w.visitNonTerminal(h.id, NodeTextBindingOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTextBindingOpt(w, h, view)
	})
}

// VisitTextBindingOptSuper visits the option's content, if any.
func (w *Walker) VisitTextBindingOptSuper(_ TextBindingOptHandle, view *WsHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitWsHandle(*view)
}

// VisitSectionHandle visits h through the Visitor's VisitSection hook.
func (w *Walker) VisitSectionHandle(h SectionHandle) error {
	return w.visitNonTerminal(h.id, NodeSection, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSection(w, h, view)
	})
}

// VisitSectionSuper visits the children of a Section node in order.
func (w *Walker) VisitSectionSuper(_ SectionHandle, view SectionView) error {
	if err := w.VisitAtHandle(view.At); err != nil {
		return err
	}
	if err := w.VisitKeysHandle(view.Keys); err != nil {
		return err
	}
	return w.VisitSectionBodyHandle(view.SectionBody)
}

// VisitSectionBodyHandle visits h through the Visitor's VisitSectionBody hook.
func (w *Walker) VisitSectionBodyHandle(h SectionBodyHandle) error {
	return w.visitNonTerminal(h.id, NodeSectionBody, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSectionBody(w, h, view)
	})
}

// VisitSectionBodySuper visits whichever alternative view holds.
func (w *Walker) VisitSectionBodySuper(_ SectionBodyHandle, view SectionBodyView) error {
	switch v := view.(type) {
	case SectionBodyListHandle:
		return w.VisitSectionBodyListHandle(v)
	case SectionBindingHandle:
		return w.VisitSectionBindingHandle(v)
	}
	return nil
}

// VisitSectionBodyListHandle visits h through the Visitor's VisitSectionBodyList hook.
func (w *Walker) VisitSectionBodyListHandle(h SectionBodyListHandle) error {
	return w.visitNonTerminal(h.id, NodeSectionBodyList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitSectionBodyList(w, h, view)
	})
}

// VisitSectionBodyListSuper visits the children of a SectionBodyList node in order.
func (w *Walker) VisitSectionBodyListSuper(_ SectionBodyListHandle, view *SectionBodyListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitBindingHandle(view.Binding); err != nil {
		return err
	}
	return w.VisitSectionBodyListHandle(view.SectionBodyList)
}

// VisitKeysHandle visits h through the Visitor's VisitKeys hook.
func (w *Walker) VisitKeysHandle(h KeysHandle) error {
	return w.visitNonTerminal(h.id, NodeKeys, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitKeys(w, h, view)
	})
}

// VisitKeysSuper visits the children of a Keys node in order.
func (w *Walker) VisitKeysSuper(_ KeysHandle, view KeysView) error {
	if err := w.VisitKeyHandle(view.Key); err != nil {
		return err
	}
	return w.VisitKeysListHandle(view.KeysList)
}

// VisitKeysListHandle visits h through the Visitor's VisitKeysList hook.
func (w *Walker) VisitKeysListHandle(h KeysListHandle) error {
	return w.visitNonTerminal(h.id, NodeKeysList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitKeysList(w, h, view)
	})
}

// VisitKeysListSuper visits the children of a KeysList node in order.
func (w *Walker) VisitKeysListSuper(_ KeysListHandle, view *KeysListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitDotHandle(view.Dot); err != nil {
		return err
	}
	if err := w.VisitKeyHandle(view.Key); err != nil {
		return err
	}
	return w.VisitKeysListHandle(view.KeysList)
}

// VisitKeyHandle visits h through the Visitor's VisitKey hook.
func (w *Walker) VisitKeyHandle(h KeyHandle) error {
	return w.visitNonTerminal(h.id, NodeKey, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitKey(w, h, view)
	})
}

// VisitKeySuper visits the children of a Key node in order.
func (w *Walker) VisitKeySuper(_ KeyHandle, view KeyView) error {
	if err := w.VisitKeyBaseHandle(view.KeyBase); err != nil {
		return err
	}
	return w.VisitKeyOptHandle(view.KeyOpt)
}

// VisitKeyBaseHandle visits h through the Visitor's VisitKeyBase hook.
func (w *Walker) VisitKeyBaseHandle(h KeyBaseHandle) error {
	return w.visitNonTerminal(h.id, NodeKeyBase, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitKeyBase(w, h, view)
	})
}

// VisitKeyBaseSuper visits whichever alternative view holds.
func (w *Walker) VisitKeyBaseSuper(_ KeyBaseHandle, view KeyBaseView) error {
	switch v := view.(type) {
	case IdentTerminal:
		return w.VisitTerminalHandle(v)
	case ExtensionNameSpaceHandle:
		return w.VisitExtensionNameSpaceHandle(v)
	case StrHandle:
		return w.VisitStrHandle(v)
	case IntegerHandle:
		return w.VisitIntegerHandle(v)
	}
	return nil
}

// VisitKeyOptHandle visits h through the Visitor's VisitKeyOpt hook.
func (w *Walker) VisitKeyOptHandle(h KeyOptHandle) error {
	return w.visitNonTerminal(h.id, NodeKeyOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitKeyOpt(w, h, view)
	})
}

// VisitKeyOptSuper visits the option's content, if any.
func (w *Walker) VisitKeyOptSuper(_ KeyOptHandle, view *ArrayMarkerHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitArrayMarkerHandle(*view)
}

// VisitExtensionNameSpaceHandle visits h through the Visitor's VisitExtensionNameSpace hook.
func (w *Walker) VisitExtensionNameSpaceHandle(h ExtensionNameSpaceHandle) error {
	return w.visitNonTerminal(h.id, NodeExtensionNameSpace, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitExtensionNameSpace(w, h, view)
	})
}

// VisitExtensionNameSpaceSuper visits the children of a ExtensionNameSpace node in order.
func (w *Walker) VisitExtensionNameSpaceSuper(_ ExtensionNameSpaceHandle, view ExtensionNameSpaceView) error {
	if err := w.VisitExtHandle(view.Ext); err != nil {
		return err
	}
	return w.VisitTerminalHandle(view.Ident)
}

// VisitExtHandle visits h through the Visitor's VisitExt hook.
func (w *Walker) VisitExtHandle(h ExtHandle) error {
	return w.visitNonTerminal(h.id, NodeExt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitExt(w, h, view)
	})
}

// VisitExtSuper visits the children of a Ext node in order.
func (w *Walker) VisitExtSuper(_ ExtHandle, view ExtView) error {
	return w.VisitTerminalHandle(view.Dollar)
}

// VisitAtHandle visits h through the Visitor's VisitAt hook.
func (w *Walker) VisitAtHandle(h AtHandle) error {
	return w.visitNonTerminal(h.id, NodeAt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitAt(w, h, view)
	})
}

// VisitAtSuper visits the children of a At node in order.
func (w *Walker) VisitAtSuper(_ AtHandle, view AtView) error {
	return w.VisitTerminalHandle(view.At)
}

// VisitDotHandle visits h through the Visitor's VisitDot hook.
func (w *Walker) VisitDotHandle(h DotHandle) error {
	return w.visitNonTerminal(h.id, NodeDot, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitDot(w, h, view)
	})
}

// VisitDotSuper visits the children of a Dot node in order.
func (w *Walker) VisitDotSuper(_ DotHandle, view DotView) error {
	return w.VisitTerminalHandle(view.Dot)
}

// VisitArrayMarkerHandle visits h through the Visitor's VisitArrayMarker hook.
func (w *Walker) VisitArrayMarkerHandle(h ArrayMarkerHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayMarker, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayMarker(w, h, view)
	})
}

// VisitArrayMarkerSuper visits the children of a ArrayMarker node in order.
func (w *Walker) VisitArrayMarkerSuper(_ ArrayMarkerHandle, view ArrayMarkerView) error {
	if err := w.VisitArrayBeginHandle(view.ArrayBegin); err != nil {
		return err
	}
	if err := w.VisitArrayMarkerOptHandle(view.ArrayMarkerOpt); err != nil {
		return err
	}
	return w.VisitArrayEndHandle(view.ArrayEnd)
}

// VisitArrayMarkerOptHandle visits h through the Visitor's VisitArrayMarkerOpt hook.
func (w *Walker) VisitArrayMarkerOptHandle(h ArrayMarkerOptHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayMarkerOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayMarkerOpt(w, h, view)
	})
}

// VisitArrayMarkerOptSuper visits the option's content, if any.
func (w *Walker) VisitArrayMarkerOptSuper(_ ArrayMarkerOptHandle, view *IntegerHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitIntegerHandle(*view)
}

// VisitObjectHandle visits h through the Visitor's VisitObject hook.
func (w *Walker) VisitObjectHandle(h ObjectHandle) error {
	return w.visitNonTerminal(h.id, NodeObject, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitObject(w, h, view)
	})
}

// VisitObjectSuper visits the children of a Object node in order.
func (w *Walker) VisitObjectSuper(_ ObjectHandle, view ObjectView) error {
	if err := w.VisitBeginHandle(view.Begin); err != nil {
		return err
	}
	if err := w.VisitObjectListHandle(view.ObjectList); err != nil {
		return err
	}
	return w.VisitEndHandle(view.End)
}

// VisitObjectListHandle visits h through the Visitor's VisitObjectList hook.
func (w *Walker) VisitObjectListHandle(h ObjectListHandle) error {
	return w.visitNonTerminal(h.id, NodeObjectList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitObjectList(w, h, view)
	})
}

// VisitObjectListSuper visits the children of a ObjectList node in order.
func (w *Walker) VisitObjectListSuper(_ ObjectListHandle, view *ObjectListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitKeyHandle(view.Key); err != nil {
		return err
	}
	if err := w.VisitBindHandle(view.Bind); err != nil {
		return err
	}
	if err := w.VisitValueHandle(view.Value); err != nil {
		return err
	}
	if err := w.VisitObjectOptHandle(view.ObjectOpt); err != nil {
		return err
	}
	return w.VisitObjectListHandle(view.ObjectList)
}

// VisitObjectOptHandle visits h through the Visitor's VisitObjectOpt hook.
func (w *Walker) VisitObjectOptHandle(h ObjectOptHandle) error {
	return w.visitNonTerminal(h.id, NodeObjectOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitObjectOpt(w, h, view)
	})
}

// VisitObjectOptSuper visits the option's content, if any.
func (w *Walker) VisitObjectOptSuper(_ ObjectOptHandle, view *CommaHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitCommaHandle(*view)
}

// VisitBeginHandle visits h through the Visitor's VisitBegin hook.
func (w *Walker) VisitBeginHandle(h BeginHandle) error {
	return w.visitNonTerminal(h.id, NodeBegin, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitBegin(w, h, view)
	})
}

// VisitBeginSuper visits the children of a Begin node in order.
func (w *Walker) VisitBeginSuper(_ BeginHandle, view BeginView) error {
	return w.VisitTerminalHandle(view.LBrace)
}

// VisitEndHandle visits h through the Visitor's VisitEnd hook.
func (w *Walker) VisitEndHandle(h EndHandle) error {
	return w.visitNonTerminal(h.id, NodeEnd, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitEnd(w, h, view)
	})
}

// VisitEndSuper visits the children of a End node in order.
func (w *Walker) VisitEndSuper(_ EndHandle, view EndView) error {
	return w.VisitTerminalHandle(view.RBrace)
}

// VisitBindHandle visits h through the Visitor's VisitBind hook.
func (w *Walker) VisitBindHandle(h BindHandle) error {
	return w.visitNonTerminal(h.id, NodeBind, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitBind(w, h, view)
	})
}

// VisitBindSuper visits the children of a Bind node in order.
func (w *Walker) VisitBindSuper(_ BindHandle, view BindView) error {
	return w.VisitTerminalHandle(view.Bind)
}

// VisitArrayHandle visits h through the Visitor's VisitArray hook.
func (w *Walker) VisitArrayHandle(h ArrayHandle) error {
	return w.visitNonTerminal(h.id, NodeArray, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArray(w, h, view)
	})
}

// VisitArraySuper visits the children of a Array node in order.
func (w *Walker) VisitArraySuper(_ ArrayHandle, view ArrayView) error {
	if err := w.VisitArrayBeginHandle(view.ArrayBegin); err != nil {
		return err
	}
	if err := w.VisitArrayListHandle(view.ArrayList); err != nil {
		return err
	}
	return w.VisitArrayEndHandle(view.ArrayEnd)
}

// VisitArrayBeginHandle visits h through the Visitor's VisitArrayBegin hook.
func (w *Walker) VisitArrayBeginHandle(h ArrayBeginHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayBegin, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayBegin(w, h, view)
	})
}

// VisitArrayBeginSuper visits the children of a ArrayBegin node in order.
func (w *Walker) VisitArrayBeginSuper(_ ArrayBeginHandle, view ArrayBeginView) error {
	return w.VisitTerminalHandle(view.LBracket)
}

// VisitArrayEndHandle visits h through the Visitor's VisitArrayEnd hook.
func (w *Walker) VisitArrayEndHandle(h ArrayEndHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayEnd, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayEnd(w, h, view)
	})
}

// VisitArrayEndSuper visits the children of a ArrayEnd node in order.
func (w *Walker) VisitArrayEndSuper(_ ArrayEndHandle, view ArrayEndView) error {
	return w.VisitTerminalHandle(view.RBracket)
}

// VisitArrayListHandle visits h through the Visitor's VisitArrayList hook.
func (w *Walker) VisitArrayListHandle(h ArrayListHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayList(w, h, view)
	})
}

// VisitArrayListSuper visits the children of a ArrayList node in order.
func (w *Walker) VisitArrayListSuper(_ ArrayListHandle, view *ArrayListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitValueHandle(view.Value); err != nil {
		return err
	}
	if err := w.VisitArrayOptHandle(view.ArrayOpt); err != nil {
		return err
	}
	return w.VisitArrayListHandle(view.ArrayList)
}

// VisitArrayOptHandle visits h through the Visitor's VisitArrayOpt hook.
func (w *Walker) VisitArrayOptHandle(h ArrayOptHandle) error {
	return w.visitNonTerminal(h.id, NodeArrayOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitArrayOpt(w, h, view)
	})
}

// VisitArrayOptSuper visits the option's content, if any.
func (w *Walker) VisitArrayOptSuper(_ ArrayOptHandle, view *CommaHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitCommaHandle(*view)
}

// VisitCommaHandle visits h through the Visitor's VisitComma hook.
func (w *Walker) VisitCommaHandle(h CommaHandle) error {
	return w.visitNonTerminal(h.id, NodeComma, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitComma(w, h, view)
	})
}

// VisitCommaSuper visits the children of a Comma node in order.
func (w *Walker) VisitCommaSuper(_ CommaHandle, view CommaView) error {
	return w.VisitTerminalHandle(view.Comma)
}

// VisitValueHandle visits h through the Visitor's VisitValue hook.
func (w *Walker) VisitValueHandle(h ValueHandle) error {
	return w.visitNonTerminal(h.id, NodeValue, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitValue(w, h, view)
	})
}

// VisitValueSuper visits whichever alternative view holds.
func (w *Walker) VisitValueSuper(_ ValueHandle, view ValueView) error {
	switch v := view.(type) {
	case ObjectHandle:
		return w.VisitObjectHandle(v)
	case ArrayHandle:
		return w.VisitArrayHandle(v)
	case IntegerHandle:
		return w.VisitIntegerHandle(v)
	case BooleanHandle:
		return w.VisitBooleanHandle(v)
	case NullHandle:
		return w.VisitNullHandle(v)
	case StrContinuesHandle:
		return w.VisitStrContinuesHandle(v)
	case TypedStrHandle:
		return w.VisitTypedStrHandle(v)
	case HoleHandle:
		return w.VisitHoleHandle(v)
	case CodeBlockHandle:
		return w.VisitCodeBlockHandle(v)
	case NamedCodeBlockHandle:
		return w.VisitNamedCodeBlockHandle(v)
	case CodeHandle:
		return w.VisitCodeHandle(v)
	case NamedCodeHandle:
		return w.VisitNamedCodeHandle(v)
	}
	return nil
}

// VisitBooleanHandle visits h through the Visitor's VisitBoolean hook.
func (w *Walker) VisitBooleanHandle(h BooleanHandle) error {
	return w.visitNonTerminal(h.id, NodeBoolean, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitBoolean(w, h, view)
	})
}

// VisitBooleanSuper visits whichever alternative view holds.
func (w *Walker) VisitBooleanSuper(_ BooleanHandle, view BooleanView) error {
	switch v := view.(type) {
	case TrueHandle:
		return w.VisitTrueHandle(v)
	case FalseHandle:
		return w.VisitFalseHandle(v)
	}
	return nil
}

// VisitTrueHandle visits h through the Visitor's VisitTrue hook.
func (w *Walker) VisitTrueHandle(h TrueHandle) error {
	return w.visitNonTerminal(h.id, NodeTrue, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTrue(w, h, view)
	})
}

// VisitTrueSuper visits the children of a True node in order.
func (w *Walker) VisitTrueSuper(_ TrueHandle, view TrueView) error {
	return w.VisitTerminalHandle(view.True)
}

// VisitFalseHandle visits h through the Visitor's VisitFalse hook.
func (w *Walker) VisitFalseHandle(h FalseHandle) error {
	return w.visitNonTerminal(h.id, NodeFalse, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitFalse(w, h, view)
	})
}

// VisitFalseSuper visits the children of a False node in order.
func (w *Walker) VisitFalseSuper(_ FalseHandle, view FalseView) error {
	return w.VisitTerminalHandle(view.False)
}

// VisitNullHandle visits h through the Visitor's VisitNull hook.
func (w *Walker) VisitNullHandle(h NullHandle) error {
	return w.visitNonTerminal(h.id, NodeNull, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitNull(w, h, view)
	})
}

// VisitNullSuper visits the children of a Null node in order.
func (w *Walker) VisitNullSuper(_ NullHandle, view NullView) error {
	return w.VisitTerminalHandle(view.Null)
}

// VisitIntegerHandle visits h through the Visitor's VisitInteger hook.
func (w *Walker) VisitIntegerHandle(h IntegerHandle) error {
	return w.visitNonTerminal(h.id, NodeInteger, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitInteger(w, h, view)
	})
}

// VisitIntegerSuper visits the children of a Integer node in order.
func (w *Walker) VisitIntegerSuper(_ IntegerHandle, view IntegerView) error {
	return w.VisitTerminalHandle(view.Integer)
}

// VisitHoleHandle visits h through the Visitor's VisitHole hook.
func (w *Walker) VisitHoleHandle(h HoleHandle) error {
	return w.visitNonTerminal(h.id, NodeHole, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitHole(w, h, view)
	})
}

// VisitHoleSuper visits the children of a Hole node in order.
func (w *Walker) VisitHoleSuper(_ HoleHandle, view HoleView) error {
	return w.VisitTerminalHandle(view.Hole)
}

// VisitStrHandle visits h through the Visitor's VisitStr hook.
func (w *Walker) VisitStrHandle(h StrHandle) error {
	return w.visitNonTerminal(h.id, NodeStr, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitStr(w, h, view)
	})
}

// VisitStrSuper visits the children of a Str node in order.
func (w *Walker) VisitStrSuper(_ StrHandle, view StrView) error {
	if err := w.VisitQuoteHandle(view.Quote); err != nil {
		return err
	}
	if err := w.VisitInStrHandle(view.InStr); err != nil {
		return err
	}
	return w.VisitQuoteHandle(view.Quote2)
}

// VisitStrContinuesHandle visits h through the Visitor's VisitStrContinues hook.
func (w *Walker) VisitStrContinuesHandle(h StrContinuesHandle) error {
	return w.visitNonTerminal(h.id, NodeStrContinues, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitStrContinues(w, h, view)
	})
}

// VisitStrContinuesSuper visits the children of a StrContinues node in order.
func (w *Walker) VisitStrContinuesSuper(_ StrContinuesHandle, view StrContinuesView) error {
	if err := w.VisitStrHandle(view.Str); err != nil {
		return err
	}
	return w.VisitStrContinuesListHandle(view.StrContinuesList)
}

// VisitStrContinuesListHandle visits h through the Visitor's VisitStrContinuesList hook.
func (w *Walker) VisitStrContinuesListHandle(h StrContinuesListHandle) error {
	return w.visitNonTerminal(h.id, NodeStrContinuesList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitStrContinuesList(w, h, view)
	})
}

// VisitStrContinuesListSuper visits the children of a StrContinuesList node in order.
func (w *Walker) VisitStrContinuesListSuper(_ StrContinuesListHandle, view *StrContinuesListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitContinueHandle(view.Continue); err != nil {
		return err
	}
	if err := w.VisitStrHandle(view.Str); err != nil {
		return err
	}
	return w.VisitStrContinuesListHandle(view.StrContinuesList)
}

// VisitQuoteHandle visits h through the Visitor's VisitQuote hook.
func (w *Walker) VisitQuoteHandle(h QuoteHandle) error {
	return w.visitNonTerminal(h.id, NodeQuote, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitQuote(w, h, view)
	})
}

// VisitQuoteSuper visits the children of a Quote node in order.
func (w *Walker) VisitQuoteSuper(_ QuoteHandle, view QuoteView) error {
	return w.VisitTerminalHandle(view.Quote)
}

// VisitTypedQuoteHandle visits h through the Visitor's VisitTypedQuote hook.
func (w *Walker) VisitTypedQuoteHandle(h TypedQuoteHandle) error {
	return w.visitNonTerminal(h.id, NodeTypedQuote, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTypedQuote(w, h, view)
	})
}

// VisitTypedQuoteSuper visits the children of a TypedQuote node in order.
func (w *Walker) VisitTypedQuoteSuper(_ TypedQuoteHandle, view TypedQuoteView) error {
	return w.VisitTerminalHandle(view.TypedQuote)
}

// VisitTypedStrHandle visits h through the Visitor's VisitTypedStr hook.
func (w *Walker) VisitTypedStrHandle(h TypedStrHandle) error {
	return w.visitNonTerminal(h.id, NodeTypedStr, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTypedStr(w, h, view)
	})
}

// VisitTypedStrSuper visits the children of a TypedStr node in order.
func (w *Walker) VisitTypedStrSuper(_ TypedStrHandle, view TypedStrView) error {
	if err := w.VisitTypedQuoteHandle(view.TypedQuote); err != nil {
		return err
	}
	if err := w.VisitInStrHandle(view.InStr); err != nil {
		return err
	}
	return w.VisitQuoteHandle(view.Quote)
}

// VisitInStrHandle visits h through the Visitor's VisitInStr hook.
func (w *Walker) VisitInStrHandle(h InStrHandle) error {
	return w.visitNonTerminal(h.id, NodeInStr, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitInStr(w, h, view)
	})
}

// VisitInStrSuper visits the children of a InStr node in order.
func (w *Walker) VisitInStrSuper(_ InStrHandle, view InStrView) error {
	return w.VisitTerminalHandle(view.InStr)
}

// VisitContinueHandle visits h through the Visitor's VisitContinue hook.
func (w *Walker) VisitContinueHandle(h ContinueHandle) error {
	return w.visitNonTerminal(h.id, NodeContinue, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitContinue(w, h, view)
	})
}

// VisitContinueSuper visits the children of a Continue node in order.
func (w *Walker) VisitContinueSuper(_ ContinueHandle, view ContinueView) error {
	return w.VisitTerminalHandle(view.Esc)
}

// VisitTextHandle visits h through the Visitor's VisitText hook.
func (w *Walker) VisitTextHandle(h TextHandle) error {
	return w.visitNonTerminal(h.id, NodeText, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitText(w, h, view)
	})
}

// VisitTextSuper visits the children of a Text node in order.
func (w *Walker) VisitTextSuper(_ TextHandle, view TextView) error {
	return w.VisitTerminalHandle(view.Text)
}

// VisitTextStartHandle visits h through the Visitor's VisitTextStart hook.
func (w *Walker) VisitTextStartHandle(h TextStartHandle) error {
	return w.visitNonTerminal(h.id, NodeTextStart, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitTextStart(w, h, view)
	})
}

// VisitTextStartSuper visits the children of a TextStart node in order.
func (w *Walker) VisitTextStartSuper(_ TextStartHandle, view TextStartView) error {
	return w.VisitTerminalHandle(view.TextStart)
}

// VisitNamedCodeBlockHandle visits h through the Visitor's VisitNamedCodeBlock hook.
func (w *Walker) VisitNamedCodeBlockHandle(h NamedCodeBlockHandle) error {
	return w.visitNonTerminal(h.id, NodeNamedCodeBlock, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitNamedCodeBlock(w, h, view)
	})
}

// VisitNamedCodeBlockSuper visits the children of a NamedCodeBlock node in order.
func (w *Walker) VisitNamedCodeBlockSuper(_ NamedCodeBlockHandle, view NamedCodeBlockView) error {
	if err := w.VisitNamedCodeBlockBeginHandle(view.NamedCodeBlockBegin); err != nil {
		return err
	}
	return w.VisitCodeBlockTailCommonHandle(view.CodeBlockTailCommon)
}

// VisitNamedCodeBlockBeginHandle visits h through the Visitor's VisitNamedCodeBlockBegin hook.
func (w *Walker) VisitNamedCodeBlockBeginHandle(h NamedCodeBlockBeginHandle) error {
	return w.visitNonTerminal(h.id, NodeNamedCodeBlockBegin, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitNamedCodeBlockBegin(w, h, view)
	})
}

// VisitNamedCodeBlockBeginSuper visits the children of a NamedCodeBlockBegin node in order.
func (w *Walker) VisitNamedCodeBlockBeginSuper(_ NamedCodeBlockBeginHandle, view NamedCodeBlockBeginView) error {
	return w.VisitTerminalHandle(view.NamedCodeBlockBegin)
}

// VisitCodeBlockHandle visits h through the Visitor's VisitCodeBlock hook.
func (w *Walker) VisitCodeBlockHandle(h CodeBlockHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlock, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlock(w, h, view)
	})
}

// VisitCodeBlockSuper visits the children of a CodeBlock node in order.
func (w *Walker) VisitCodeBlockSuper(_ CodeBlockHandle, view CodeBlockView) error {
	if err := w.VisitCodeBlockDelimiterHandle(view.CodeBlockDelimiter); err != nil {
		return err
	}
	return w.VisitCodeBlockTailCommonHandle(view.CodeBlockTailCommon)
}

// VisitCodeBlockDelimiterHandle visits h through the Visitor's VisitCodeBlockDelimiter hook.
func (w *Walker) VisitCodeBlockDelimiterHandle(h CodeBlockDelimiterHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlockDelimiter, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlockDelimiter(w, h, view)
	})
}

// VisitCodeBlockDelimiterSuper visits the children of a CodeBlockDelimiter node in order.
func (w *Walker) VisitCodeBlockDelimiterSuper(_ CodeBlockDelimiterHandle, view CodeBlockDelimiterView) error {
	return w.VisitTerminalHandle(view.CodeBlockDelimiter)
}

// VisitCodeBlockTailCommonHandle visits h through the Visitor's VisitCodeBlockTailCommon hook.
func (w *Walker) VisitCodeBlockTailCommonHandle(h CodeBlockTailCommonHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlockTailCommon, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlockTailCommon(w, h, view)
	})
}

// VisitCodeBlockTailCommonSuper visits the children of a CodeBlockTailCommon node in order.
func (w *Walker) VisitCodeBlockTailCommonSuper(_ CodeBlockTailCommonHandle, view CodeBlockTailCommonView) error {
	if err := w.VisitNewlineHandle(view.Newline); err != nil {
		return err
	}
	if err := w.VisitCodeBlockTailCommonListHandle(view.CodeBlockTailCommonList); err != nil {
		return err
	}
	if err := w.VisitCodeBlockTailCommonOptHandle(view.CodeBlockTailCommonOpt); err != nil {
		return err
	}
	return w.VisitCodeBlockDelimiterHandle(view.CodeBlockDelimiter)
}

// VisitCodeBlockTailCommonListHandle visits h through the Visitor's VisitCodeBlockTailCommonList hook.
func (w *Walker) VisitCodeBlockTailCommonListHandle(h CodeBlockTailCommonListHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlockTailCommonList, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlockTailCommonList(w, h, view)
	})
}

// VisitCodeBlockTailCommonListSuper visits the children of a CodeBlockTailCommonList node in order.
func (w *Walker) VisitCodeBlockTailCommonListSuper(_ CodeBlockTailCommonListHandle, view *CodeBlockTailCommonListView) error {
	if view == nil {
		return nil
	}
	if err := w.VisitCodeBlockLineHandle(view.CodeBlockLine); err != nil {
		return err
	}
	return w.VisitCodeBlockTailCommonListHandle(view.CodeBlockTailCommonList)
}

// VisitCodeBlockTailCommonOptHandle visits h through the Visitor's VisitCodeBlockTailCommonOpt hook.
func (w *Walker) VisitCodeBlockTailCommonOptHandle(h CodeBlockTailCommonOptHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlockTailCommonOpt, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlockTailCommonOpt(w, h, view)
	})
}

// VisitCodeBlockTailCommonOptSuper visits the option's content, if any.
func (w *Walker) VisitCodeBlockTailCommonOptSuper(_ CodeBlockTailCommonOptHandle, view *WsHandle) error {
	if view == nil {
		return nil
	}
	return w.VisitWsHandle(*view)
}

// VisitCodeBlockLineHandle visits h through the Visitor's VisitCodeBlockLine hook.
func (w *Walker) VisitCodeBlockLineHandle(h CodeBlockLineHandle) error {
	return w.visitNonTerminal(h.id, NodeCodeBlockLine, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCodeBlockLine(w, h, view)
	})
}

// VisitCodeBlockLineSuper visits the children of a CodeBlockLine node in order.
func (w *Walker) VisitCodeBlockLineSuper(_ CodeBlockLineHandle, view CodeBlockLineView) error {
	return w.VisitTerminalHandle(view.CodeBlockLine)
}

// VisitNewlineHandle visits h through the Visitor's VisitNewline hook.
func (w *Walker) VisitNewlineHandle(h NewlineHandle) error {
	return w.visitNonTerminal(h.id, NodeNewline, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitNewline(w, h, view)
	})
}

// VisitNewlineSuper visits the children of a Newline node in order.
func (w *Walker) VisitNewlineSuper(_ NewlineHandle, view NewlineView) error {
	return w.VisitTerminalHandle(view.Newline)
}

// VisitWsHandle visits h through the Visitor's VisitWs hook.
func (w *Walker) VisitWsHandle(h WsHandle) error {
	return w.visitNonTerminal(h.id, NodeWs, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitWs(w, h, view)
	})
}

// VisitWsSuper visits the children of a Ws node in order.
func (w *Walker) VisitWsSuper(_ WsHandle, view WsView) error {
	return w.VisitTerminalHandle(view.Ws)
}

// VisitCodeHandle visits h through the Visitor's VisitCode hook.
func (w *Walker) VisitCodeHandle(h CodeHandle) error {
	return w.visitNonTerminal(h.id, NodeCode, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitCode(w, h, view)
	})
}

// VisitCodeSuper visits the children of a Code node in order.
func (w *Walker) VisitCodeSuper(_ CodeHandle, view CodeView) error {
	return w.VisitTerminalHandle(view.Code)
}

// VisitNamedCodeHandle visits h through the Visitor's VisitNamedCode hook.
func (w *Walker) VisitNamedCodeHandle(h NamedCodeHandle) error {
	return w.visitNonTerminal(h.id, NodeNamedCode, func() error {
		view, err := h.View(w.tree)
		if err != nil {
			return w.visitor.OnConstructError(w, h.id, err)
		}
		return w.visitor.VisitNamedCode(w, h, view)
	})
}

// VisitNamedCodeSuper visits the children of a NamedCode node in order.
func (w *Walker) VisitNamedCodeSuper(_ NamedCodeHandle, view NamedCodeView) error {
	return w.VisitTerminalHandle(view.NamedCode)
}

func (w *Walker) visitNonTerminalKind(id NodeID, kind NonTerminalKind) error {
	switch kind {
	case NodeRoot:
		return w.VisitRootHandle(RootHandle{id: id})
	case NodeSwon:
		return w.VisitSwonHandle(SwonHandle{id: id})
	case NodeSwonList:
		return w.VisitSwonListHandle(SwonListHandle{id: id})
	case NodeSwonList0:
		return w.VisitSwonList0Handle(SwonList0Handle{id: id})
	case NodeBinding:
		return w.VisitBindingHandle(BindingHandle{id: id})
	case NodeBindingRhs:
		return w.VisitBindingRhsHandle(BindingRhsHandle{id: id})
	case NodeValueBinding:
		return w.VisitValueBindingHandle(ValueBindingHandle{id: id})
	case NodeSectionBinding:
		return w.VisitSectionBindingHandle(SectionBindingHandle{id: id})
	case NodeTextBinding:
		return w.VisitTextBindingHandle(TextBindingHandle{id: id})
	case NodeTextBindingOpt:
		return w.VisitTextBindingOptHandle(TextBindingOptHandle{id: id})
	case NodeSection:
		return w.VisitSectionHandle(SectionHandle{id: id})
	case NodeSectionBody:
		return w.VisitSectionBodyHandle(SectionBodyHandle{id: id})
	case NodeSectionBodyList:
		return w.VisitSectionBodyListHandle(SectionBodyListHandle{id: id})
	case NodeKeys:
		return w.VisitKeysHandle(KeysHandle{id: id})
	case NodeKeysList:
		return w.VisitKeysListHandle(KeysListHandle{id: id})
	case NodeKey:
		return w.VisitKeyHandle(KeyHandle{id: id})
	case NodeKeyBase:
		return w.VisitKeyBaseHandle(KeyBaseHandle{id: id})
	case NodeKeyOpt:
		return w.VisitKeyOptHandle(KeyOptHandle{id: id})
	case NodeExtensionNameSpace:
		return w.VisitExtensionNameSpaceHandle(ExtensionNameSpaceHandle{id: id})
	case NodeExt:
		return w.VisitExtHandle(ExtHandle{id: id})
	case NodeAt:
		return w.VisitAtHandle(AtHandle{id: id})
	case NodeDot:
		return w.VisitDotHandle(DotHandle{id: id})
	case NodeArrayMarker:
		return w.VisitArrayMarkerHandle(ArrayMarkerHandle{id: id})
	case NodeArrayMarkerOpt:
		return w.VisitArrayMarkerOptHandle(ArrayMarkerOptHandle{id: id})
	case NodeObject:
		return w.VisitObjectHandle(ObjectHandle{id: id})
	case NodeObjectList:
		return w.VisitObjectListHandle(ObjectListHandle{id: id})
	case NodeObjectOpt:
		return w.VisitObjectOptHandle(ObjectOptHandle{id: id})
	case NodeBegin:
		return w.VisitBeginHandle(BeginHandle{id: id})
	case NodeEnd:
		return w.VisitEndHandle(EndHandle{id: id})
	case NodeBind:
		return w.VisitBindHandle(BindHandle{id: id})
	case NodeArray:
		return w.VisitArrayHandle(ArrayHandle{id: id})
	case NodeArrayBegin:
		return w.VisitArrayBeginHandle(ArrayBeginHandle{id: id})
	case NodeArrayEnd:
		return w.VisitArrayEndHandle(ArrayEndHandle{id: id})
	case NodeArrayList:
		return w.VisitArrayListHandle(ArrayListHandle{id: id})
	case NodeArrayOpt:
		return w.VisitArrayOptHandle(ArrayOptHandle{id: id})
	case NodeComma:
		return w.VisitCommaHandle(CommaHandle{id: id})
	case NodeValue:
		return w.VisitValueHandle(ValueHandle{id: id})
	case NodeBoolean:
		return w.VisitBooleanHandle(BooleanHandle{id: id})
	case NodeTrue:
		return w.VisitTrueHandle(TrueHandle{id: id})
	case NodeFalse:
		return w.VisitFalseHandle(FalseHandle{id: id})
	case NodeNull:
		return w.VisitNullHandle(NullHandle{id: id})
	case NodeInteger:
		return w.VisitIntegerHandle(IntegerHandle{id: id})
	case NodeHole:
		return w.VisitHoleHandle(HoleHandle{id: id})
	case NodeStr:
		return w.VisitStrHandle(StrHandle{id: id})
	case NodeStrContinues:
		return w.VisitStrContinuesHandle(StrContinuesHandle{id: id})
	case NodeStrContinuesList:
		return w.VisitStrContinuesListHandle(StrContinuesListHandle{id: id})
	case NodeQuote:
		return w.VisitQuoteHandle(QuoteHandle{id: id})
	case NodeTypedQuote:
		return w.VisitTypedQuoteHandle(TypedQuoteHandle{id: id})
	case NodeTypedStr:
		return w.VisitTypedStrHandle(TypedStrHandle{id: id})
	case NodeInStr:
		return w.VisitInStrHandle(InStrHandle{id: id})
	case NodeContinue:
		return w.VisitContinueHandle(ContinueHandle{id: id})
	case NodeText:
		return w.VisitTextHandle(TextHandle{id: id})
	case NodeTextStart:
		return w.VisitTextStartHandle(TextStartHandle{id: id})
	case NodeNamedCodeBlock:
		return w.VisitNamedCodeBlockHandle(NamedCodeBlockHandle{id: id})
	case NodeNamedCodeBlockBegin:
		return w.VisitNamedCodeBlockBeginHandle(NamedCodeBlockBeginHandle{id: id})
	case NodeCodeBlock:
		return w.VisitCodeBlockHandle(CodeBlockHandle{id: id})
	case NodeCodeBlockDelimiter:
		return w.VisitCodeBlockDelimiterHandle(CodeBlockDelimiterHandle{id: id})
	case NodeCodeBlockTailCommon:
		return w.VisitCodeBlockTailCommonHandle(CodeBlockTailCommonHandle{id: id})
	case NodeCodeBlockTailCommonList:
		return w.VisitCodeBlockTailCommonListHandle(CodeBlockTailCommonListHandle{id: id})
	case NodeCodeBlockTailCommonOpt:
		return w.VisitCodeBlockTailCommonOptHandle(CodeBlockTailCommonOptHandle{id: id})
	case NodeCodeBlockLine:
		return w.VisitCodeBlockLineHandle(CodeBlockLineHandle{id: id})
	case NodeNewline:
		return w.VisitNewlineHandle(NewlineHandle{id: id})
	case NodeWs:
		return w.VisitWsHandle(WsHandle{id: id})
	case NodeCode:
		return w.VisitCodeHandle(CodeHandle{id: id})
	case NodeNamedCode:
		return w.VisitNamedCodeHandle(NamedCodeHandle{id: id})
	}
	return w.Recover(id)
}

func (w *Walker) dispatchTerminal(id NodeID, kind TerminalKind, data NodeData) error {
	switch kind {
	case TokAt:
		return w.visitor.VisitAtTerminal(w, AtTerminal{id: id}, data)
	case TokDollar:
		return w.visitor.VisitDollarTerminal(w, DollarTerminal{id: id}, data)
	case TokDot:
		return w.visitor.VisitDotTerminal(w, DotTerminal{id: id}, data)
	case TokLBrace:
		return w.visitor.VisitLBraceTerminal(w, LBraceTerminal{id: id}, data)
	case TokRBrace:
		return w.visitor.VisitRBraceTerminal(w, RBraceTerminal{id: id}, data)
	case TokLBracket:
		return w.visitor.VisitLBracketTerminal(w, LBracketTerminal{id: id}, data)
	case TokRBracket:
		return w.visitor.VisitRBracketTerminal(w, RBracketTerminal{id: id}, data)
	case TokBind:
		return w.visitor.VisitBindTerminal(w, BindTerminal{id: id}, data)
	case TokComma:
		return w.visitor.VisitCommaTerminal(w, CommaTerminal{id: id}, data)
	case TokQuote:
		return w.visitor.VisitQuoteTerminal(w, QuoteTerminal{id: id}, data)
	case TokTypedQuote:
		return w.visitor.VisitTypedQuoteTerminal(w, TypedQuoteTerminal{id: id}, data)
	case TokTextStart:
		return w.visitor.VisitTextStartTerminal(w, TextStartTerminal{id: id}, data)
	case TokNamedCodeBlockBegin:
		return w.visitor.VisitNamedCodeBlockBeginTerminal(w, NamedCodeBlockBeginTerminal{id: id}, data)
	case TokCodeBlockDelimiter:
		return w.visitor.VisitCodeBlockDelimiterTerminal(w, CodeBlockDelimiterTerminal{id: id}, data)
	case TokInteger:
		return w.visitor.VisitIntegerTerminal(w, IntegerTerminal{id: id}, data)
	case TokTrue:
		return w.visitor.VisitTrueTerminal(w, TrueTerminal{id: id}, data)
	case TokFalse:
		return w.visitor.VisitFalseTerminal(w, FalseTerminal{id: id}, data)
	case TokNull:
		return w.visitor.VisitNullTerminal(w, NullTerminal{id: id}, data)
	case TokHole:
		return w.visitor.VisitHoleTerminal(w, HoleTerminal{id: id}, data)
	case TokIdent:
		return w.visitor.VisitIdentTerminal(w, IdentTerminal{id: id}, data)
	case TokInStr:
		return w.visitor.VisitInStrTerminal(w, InStrTerminal{id: id}, data)
	case TokText:
		return w.visitor.VisitTextTerminal(w, TextTerminal{id: id}, data)
	case TokCode:
		return w.visitor.VisitCodeTerminal(w, CodeTerminal{id: id}, data)
	case TokNamedCode:
		return w.visitor.VisitNamedCodeTerminal(w, NamedCodeTerminal{id: id}, data)
	case TokCodeBlockLine:
		return w.visitor.VisitCodeBlockLineTerminal(w, CodeBlockLineTerminal{id: id}, data)
	case TokEsc:
		return w.visitor.VisitEscTerminal(w, EscTerminal{id: id}, data)
	case TokNewLine:
		return w.visitor.VisitNewLineTerminal(w, NewLineTerminal{id: id}, data)
	case TokWhitespace:
		return w.visitor.VisitWhitespaceTerminal(w, WhitespaceTerminal{id: id}, data)
	case TokLineComment:
		return w.visitor.VisitLineCommentTerminal(w, LineCommentTerminal{id: id}, data)
	case TokBlockComment:
		return w.visitor.VisitBlockCommentTerminal(w, BlockCommentTerminal{id: id}, data)
	case TokNewline:
		return w.visitor.VisitNewlineTerminal(w, NewlineTerminal{id: id}, data)
	case TokWs:
		return w.visitor.VisitWsTerminal(w, WsTerminal{id: id}, data)
	}
	return w.visitor.VisitTerminal(w, id, kind, data)
}
